package magic

// Kind identifies a detected file format.
// The zero value is Unknown, which is what every engine returns on no match.
type Kind int

const (
	Unknown Kind = iota
	PNG
	Bitmap
	Gzip
	Bzip
	PkgZip
	Tar
	MSDOS
	JPG
	JavaClass
	MP3
	ISO
	RPM
	SQLite
	XML
	ICO
	WASM
	Deb
	RAR
	ScriptExecute
	ELF
	OGG
	Photoshop
	Blender
	TrueTypeFont
	OpenTypeFont
	EnvironmentModule
	WindowsImagingFormat
	Slob
	SerializedJavaData
	CreativeVoiceFile
	AuAudio
	OpenGLIrisPerformer
	NoodlesoftHazel
	VBScriptEncoded
	WebP
	AppleIconImage
	GIF
	JPEG2000
	PDF
	AppleDiskImage
	Cabinet
	Matroska
	RichTextFormat
	PhotoCapTemplate
	AceCompressed
	FlashVideo
	VMDK
	ChromeExtension

	kindCount
)

type kindInfo struct {
	name string
	mime string
	ext  string
}

var kindInfos = [kindCount]kindInfo{
	Unknown:              {"unknown", "application/octet-stream", ""},
	PNG:                  {"png", "image/png", ".png"},
	Bitmap:               {"bmp", "image/bmp", ".bmp"},
	Gzip:                 {"gzip", "application/gzip", ".gz"},
	Bzip:                 {"bzip2", "application/x-bzip2", ".bz2"},
	PkgZip:               {"zip", "application/zip", ".zip"},
	Tar:                  {"tar", "application/x-tar", ".tar"},
	MSDOS:                {"msdos", "application/x-msdownload", ".exe"},
	JPG:                  {"jpeg", "image/jpeg", ".jpg"},
	JavaClass:            {"java-class", "application/java-vm", ".class"},
	MP3:                  {"mp3", "audio/mpeg", ".mp3"},
	ISO:                  {"iso9660", "application/x-iso9660-image", ".iso"},
	RPM:                  {"rpm", "application/x-rpm", ".rpm"},
	SQLite:               {"sqlite", "application/vnd.sqlite3", ".sqlite"},
	XML:                  {"xml", "application/xml", ".xml"},
	ICO:                  {"ico", "image/x-icon", ".ico"},
	WASM:                 {"wasm", "application/wasm", ".wasm"},
	Deb:                  {"deb", "application/vnd.debian.binary-package", ".deb"},
	RAR:                  {"rar", "application/vnd.rar", ".rar"},
	ScriptExecute:        {"script", "text/x-shellscript", ".sh"},
	ELF:                  {"elf", "application/x-executable", ""},
	OGG:                  {"ogg", "audio/ogg", ".ogg"},
	Photoshop:            {"psd", "image/vnd.adobe.photoshop", ".psd"},
	Blender:              {"blender", "application/x-blender", ".blend"},
	TrueTypeFont:         {"ttf", "font/ttf", ".ttf"},
	OpenTypeFont:         {"otf", "font/otf", ".otf"},
	EnvironmentModule:    {"modulefile", "text/x-modulefile", ""},
	WindowsImagingFormat: {"wim", "application/x-ms-wim", ".wim"},
	Slob:                 {"slob", "application/x-slob", ".slob"},
	SerializedJavaData:   {"java-serialized", "application/x-java-serialized-object", ".ser"},
	CreativeVoiceFile:    {"voc", "audio/x-voc", ".voc"},
	AuAudio:              {"au", "audio/basic", ".au"},
	OpenGLIrisPerformer:  {"iris-performer", "application/x-iris-performer", ".pfb"},
	NoodlesoftHazel:      {"hazel", "application/x-hazel", ".hazelrules"},
	VBScriptEncoded:      {"vbe", "text/vbscript.encode", ".vbe"},
	WebP:                 {"webp", "image/webp", ".webp"},
	AppleIconImage:       {"icns", "image/icns", ".icns"},
	GIF:                  {"gif", "image/gif", ".gif"},
	JPEG2000:             {"jpeg2000", "image/jp2", ".jp2"},
	PDF:                  {"pdf", "application/pdf", ".pdf"},
	AppleDiskImage:       {"dmg", "application/x-apple-diskimage", ".dmg"},
	Cabinet:              {"cab", "application/vnd.ms-cab-compressed", ".cab"},
	Matroska:             {"matroska", "video/x-matroska", ".mkv"},
	RichTextFormat:       {"rtf", "application/rtf", ".rtf"},
	PhotoCapTemplate:     {"photocap-template", "application/x-photocap-template", ".tpl"},
	AceCompressed:        {"ace", "application/x-ace-compressed", ".ace"},
	FlashVideo:           {"flv", "video/x-flv", ".flv"},
	VMDK:                 {"vmdk", "application/x-vmdk", ".vmdk"},
	ChromeExtension:      {"crx", "application/x-chrome-extension", ".crx"},
}

// String returns the short lowercase name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return kindInfos[Unknown].name
	}
	return kindInfos[k].name
}

// MIME returns the MIME type usually associated with the kind.
// Unknown maps to application/octet-stream.
func (k Kind) MIME() string {
	if k < 0 || k >= kindCount {
		return kindInfos[Unknown].mime
	}
	return kindInfos[k].mime
}

// Extension returns the conventional file extension, including the dot.
// Formats without a conventional extension return "".
func (k Kind) Extension() string {
	if k < 0 || k >= kindCount {
		return ""
	}
	return kindInfos[k].ext
}

// IsUnknown reports whether k is the no-match sentinel.
func (k Kind) IsUnknown() bool {
	return k == Unknown || k < 0 || k >= kindCount
}

// Kinds returns every known kind except Unknown, in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := Unknown + 1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind looks a kind up by its String name.
func ParseKind(name string) (Kind, bool) {
	for k := Unknown + 1; k < kindCount; k++ {
		if kindInfos[k].name == name {
			return k, true
		}
	}
	return Unknown, false
}
