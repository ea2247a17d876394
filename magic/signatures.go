package magic

var (
	pngSignature      = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	gzipSignature     = []byte{0x1F, 0x8B}
	bzipSignature     = []byte{0x42, 0x5A}
	pkgZipSignature   = []byte{0x50, 0x4B, 0x03, 0x04}
	bitmapSignature   = []byte{0x42, 0x4D}
	tarSignature      = []byte("ustar")
	msdosSignature    = []byte{0x4D, 0x5A}
	jpgSignature      = []byte{0xFF, 0xD8, 0xFF, 0xE0}
	classSignature    = []byte{0xCA, 0xFE, 0xBA, 0xBE}
	isoSignature      = []byte("CD001")
	rpmSignature      = []byte{0xED, 0xAB, 0xEE, 0xDB}
	sqliteSignature   = []byte("SQLite format 3\x00")
	xmlSignature      = []byte("<?xml ")
	icoSignature      = []byte{0x00, 0x00, 0x01, 0x00}
	wasmSignature     = []byte{0x00, 0x61, 0x73, 0x6D}
	debSignature      = []byte("!<arch>\n")
	shebangSignature  = []byte("#!")
	elfSignature      = []byte{0x7F, 'E', 'L', 'F'}
	oggSignature      = []byte("OggS")
	psdSignature      = []byte("8BPS")
	blenderSignature  = []byte("BLENDER")
	ttfSignature      = []byte{0x00, 0x01, 0x00, 0x00, 0x00}
	otfSignature      = []byte("OTTO")
	moduleSignature   = []byte("#%Module")
	wimSignature      = []byte{0x4D, 0x53, 0x57, 0x49, 0x4D, 0x00, 0x00, 0x00, 0xD0, 0x00, 0x00, 0x00, 0x00}
	slobSignature     = []byte{0x21, 0x2D, 0x31, 0x53, 0x4C, 0x4F, 0x42, 0x1F}
	javaSerSignature  = []byte{0xAC, 0xED}
	vocSignature      = []byte("Creative Voice File\x1a\x1a\x00")
	auSignature       = []byte(".snd")
	irisSignature     = []byte{0xDB, 0x0A, 0xCE, 0x00}
	hazelSignature    = []byte{0x48, 0x5A, 0x4C, 0x52, 0x00, 0x00, 0x00, 0x18}
	vbeSignature      = []byte("#@~^")
	icnsSignature     = []byte("icns")
	pdfSignature      = []byte("%PDF-")
	dmgSignature      = []byte("koly")
	cabSignature      = []byte("MSCF")
	matroskaSignature = []byte{0x1A, 0x45, 0xDF, 0xA3}
	rtfSignature      = []byte(`{\rtf1`)
	photoCapSignature = []byte{0x78, 0x56, 0x34}
	aceSignature      = []byte("**ACE**")
	flvSignature      = []byte("FLV")
	vmdkSignature     = []byte("KDM")
	crxSignature      = []byte("Cr24")

	mp3Signatures = [][]byte{
		{0xFF, 0xFB}, // MPEG-1 Layer III
		{0xFF, 0xF3},
		{0xFF, 0xF2},
	}
	rarSignatures = [][]byte{
		[]byte("Rar!\x1a\x07\x00"),     // RAR 1.5 - 4.x
		[]byte("Rar!\x1a\x07\x01\x00"), // RAR 5
	}
	gifSignatures = [][]byte{
		[]byte("GIF87a"),
		[]byte("GIF89a"),
	}
	jpeg2000Signatures = [][]byte{
		{0x00, 0x00, 0x00, 0x0C, 0x6A, 0x50, 0x20, 0x20, 0x0D, 0x0A, 0x87, 0x0A}, // JP2 box
		{0xFF, 0x4F, 0xFF, 0x51}, // raw codestream
	}
)

var atStart = []int{DefaultOffset}

// sig builds a default-strategy rule checked at the start of the buffer.
func sig(kind Kind, signatures ...[]byte) Rule {
	return Rule{
		Signatures:   signatures,
		Offsets:      atStart,
		MaxBytesRead: headerBudget(atStart, signatures...),
		Kind:         kind,
	}
}

// sigAt builds a default-strategy rule checked at each of offsets.
func sigAt(kind Kind, offsets []int, signatures ...[]byte) Rule {
	return Rule{
		Signatures:   signatures,
		Offsets:      offsets,
		MaxBytesRead: headerBudget(offsets, signatures...),
		Kind:         kind,
	}
}

// signatureTable is the built-in rule table.
// Order matters: the first matching rule wins, so a short or generic signature
// must come after any longer one it would shadow.
var signatureTable = []Rule{
	sig(PNG, pngSignature),
	sig(JavaClass, classSignature),
	sig(JPG, jpgSignature),
	sig(Gzip, gzipSignature),
	sig(Bzip, bzipSignature),
	sig(PkgZip, pkgZipSignature),
	sig(Bitmap, bitmapSignature),
	sig(MSDOS, msdosSignature),
	sigAt(Tar, TAROffsets, tarSignature),
	sig(MP3, mp3Signatures...),
	sigAt(ISO, ISOOffsets, isoSignature),
	sig(RPM, rpmSignature),
	sig(SQLite, sqliteSignature),
	sig(XML, xmlSignature),
	sig(ICO, icoSignature),
	sig(WASM, wasmSignature),
	sig(Deb, debSignature),
	sig(ScriptExecute, shebangSignature),
	sig(RAR, rarSignatures...),
	sig(ELF, elfSignature),
	sig(OGG, oggSignature),
	sig(Photoshop, psdSignature),
	sig(Blender, blenderSignature),
	sig(TrueTypeFont, ttfSignature),
	sig(OpenTypeFont, otfSignature),
	sig(EnvironmentModule, moduleSignature),
	sig(WindowsImagingFormat, wimSignature),
	sig(Slob, slobSignature),
	sig(SerializedJavaData, javaSerSignature),
	sig(CreativeVoiceFile, vocSignature),
	sig(AuAudio, auSignature),
	sig(OpenGLIrisPerformer, irisSignature),
	sig(NoodlesoftHazel, hazelSignature),
	sig(VBScriptEncoded, vbeSignature),
	{
		// RIFF container with a variable size field; not expressible as a fixed string.
		Signatures:   [][]byte{riffMagic, webpMagic},
		MaxBytesRead: DefaultMaxBytesRead,
		Kind:         WebP,
		Match:        IsWebP,
	},
	sig(AppleIconImage, icnsSignature),
	sig(GIF, gifSignatures...),
	sig(JPEG2000, jpeg2000Signatures...),
	sig(PDF, pdfSignature),
	sig(AppleDiskImage, dmgSignature),
	sig(Cabinet, cabSignature),
	sig(Matroska, matroskaSignature),
	sig(RichTextFormat, rtfSignature),
	sig(PhotoCapTemplate, photoCapSignature),
	sig(AceCompressed, aceSignature),
	sig(FlashVideo, flvSignature),
	sig(VMDK, vmdkSignature),
	sig(ChromeExtension, crxSignature),
}

var recommendedReadSize = RecommendedReadSizeFor(signatureTable)

// Signatures returns a copy of the built-in table in match order.
// The byte slices inside the rules are shared and must not be modified.
func Signatures() []Rule {
	rules := make([]Rule, len(signatureTable))
	copy(rules, signatureTable)
	return rules
}

// RuleFor returns the first built-in rule reporting kind.
func RuleFor(kind Kind) (Rule, bool) {
	for _, r := range signatureTable {
		if r.Kind == kind {
			return r, true
		}
	}
	return Rule{}, false
}
