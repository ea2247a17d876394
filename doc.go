// Package filemagic detects file formats from their leading bytes.
//
// The matching engine lives in the magic subpackage, which does no I/O. This
// package adds what a program needs around it: reading headers of the right
// size, opening files from a directory or from memory, environment based
// configuration, a concurrent Detector service and a directory Watcher.
//
// # Basic Usage
//
//	header, err := filemagic.ReadHeader("disk.iso", magic.RecommendedReadSize())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(magic.Match(header)) // iso9660
//
// # Detector
//
// A Detector bundles the read size, the matching strategy and a header
// fingerprint:
//
//	d, err := filemagic.New(nil)
//	res, err := d.Detect(ctx, "photo.png")
//	fmt.Println(res.Summary())
//
//	results := d.DetectAll(ctx, paths) // bounded worker pool, input order kept
//
// Files can be opened below a root directory, refusing paths that escape it:
//
//	src, err := filemagic.NewLocalSource("./uploads")
//	d, err := filemagic.New(nil, filemagic.WithSource(src))
//
// # Configuration
//
// Configuration is read from the environment with the BEAVER_ prefix:
//
//	BEAVER_FILEMAGIC_READ_SIZE=0          # 0 = magic.RecommendedReadSize()
//	BEAVER_FILEMAGIC_STRATEGY=full        # full, bounded, long-enough
//	BEAVER_FILEMAGIC_CHECKSUM=xxhash      # xxhash, sha256, crc32, none
//	BEAVER_FILEMAGIC_WORKERS=4
//	BEAVER_FILEMAGIC_WATCH_PATTERN=**
//	BEAVER_FILEMAGIC_LOG_LEVEL=warn
//
// Use WithPrefix to read a different prefix:
//
//	d, err := filemagic.WithPrefix("APP_").New()
//
// # Error Handling
//
// I/O failures are returned as *PathError wrapping one of the sentinel errors
// where one applies:
//
//	if errors.Is(err, filemagic.ErrNotExist) {
//	    // Handle missing file
//	}
//
// An unrecognised header is not an error: it is reported as magic.Unknown.
package filemagic
