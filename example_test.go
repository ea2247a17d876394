package filemagic_test

import (
	"context"
	"fmt"

	"github.com/gobeaver/filemagic"
	"github.com/gobeaver/filemagic/magic"
)

func ExampleDetector() {
	ctx := context.Background()

	// Serve files from memory; use NewLocalSource for a directory on disk
	src := filemagic.NewMemorySource()
	_ = src.Put("report.pdf", []byte("%PDF-1.7\n"))
	_ = src.Put("archive.gz", []byte{0x1F, 0x8B, 0x08, 0x00})
	_ = src.Put("notes.txt", []byte("plain text"))

	d, _ := filemagic.New(nil, filemagic.WithSource(src))

	for _, res := range d.DetectAll(ctx, []string{"report.pdf", "archive.gz", "notes.txt"}) {
		fmt.Println(res.Path, res.Kind, res.MIME)
	}
	// Output:
	// report.pdf pdf application/pdf
	// archive.gz gzip application/gzip
	// notes.txt unknown application/octet-stream
}

func ExampleReadHeaderContext() {
	src := filemagic.NewMemorySource()
	_ = src.Put("disk.iso", isoImage())

	header, _ := filemagic.ReadHeaderContext(context.Background(), src, "disk.iso", magic.RecommendedReadSize())
	fmt.Println(len(header), magic.Match(header))

	short := header[:magic.DefaultMaxBytesRead]
	fmt.Println(magic.Match(short))
	// Output:
	// 36870 iso9660
	// unknown
}

func isoImage() []byte {
	data := make([]byte, 40000)
	copy(data[32769:], "CD001")
	return data
}
