package main

import (
	"fmt"

	"github.com/gobeaver/filemagic"
	"github.com/gobeaver/filemagic/internal/logging"
	"github.com/spf13/cobra"
)

var (
	detectFormat   string
	detectRoot     string
	detectStrategy string
	detectReadSize int
	detectChecksum string
	detectWorkers  int
)

var detectCmd = &cobra.Command{
	Use:   "detect PATH...",
	Short: "Detect the format of files",
	Long: `Read the header of each file and report the first matching format.
Flags override the FILEMAGIC_* environment configuration.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().StringVar(&detectFormat, "format", "text", "Output format: text, json")
	detectCmd.Flags().StringVar(&detectRoot, "root", "", "Resolve paths below this directory and refuse escapes")
	detectCmd.Flags().StringVar(&detectStrategy, "strategy", "", "Matching strategy: full, bounded, long-enough")
	detectCmd.Flags().IntVar(&detectReadSize, "read-size", 0, "Header bytes to read (0 = configured or recommended)")
	detectCmd.Flags().StringVar(&detectChecksum, "checksum", "", "Header checksum: xxhash, sha256, crc32, none")
	detectCmd.Flags().IntVar(&detectWorkers, "workers", 0, "Concurrent detections (0 = configured)")
}

// detectOutput is the JSON form of a result
type detectOutput struct {
	Path      string `json:"path"`
	Kind      string `json:"kind"`
	MIME      string `json:"mime,omitempty"`
	Extension string `json:"extension,omitempty"`
	BytesRead int    `json:"bytes_read"`
	ReadSize  int    `json:"read_size"`
	Checksum  string `json:"checksum,omitempty"`
	Duration  string `json:"duration"`
	Error     string `json:"error,omitempty"`
}

func runDetect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyDetectFlags(cfg)

	opts := []filemagic.Option{filemagic.WithLogger(logging.GetLogger("detect"))}
	if detectRoot != "" {
		src, err := filemagic.NewLocalSource(detectRoot)
		if err != nil {
			return err
		}
		opts = append(opts, filemagic.WithSource(src))
	}

	d, err := filemagic.New(cfg, opts...)
	if err != nil {
		return err
	}

	results := d.DetectAll(commandContext(cmd), args)

	switch detectFormat {
	case "json":
		err = outputDetectJSON(cmd, results)
	case "text":
		outputDetectText(cmd, results)
	default:
		return fmt.Errorf("unknown output format: %s", detectFormat)
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be read", failed, len(results))
	}
	return nil
}

func applyDetectFlags(cfg *filemagic.Config) {
	if detectStrategy != "" {
		cfg.Strategy = detectStrategy
	}
	if detectReadSize != 0 {
		cfg.ReadSize = detectReadSize
	}
	if detectChecksum != "" {
		cfg.Checksum = detectChecksum
	}
	if detectWorkers != 0 {
		cfg.Workers = detectWorkers
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func outputDetectText(cmd *cobra.Command, results []*filemagic.Result) {
	s := newStyles(colorEnabled())
	out := cmd.OutOrStdout()
	for _, res := range results {
		fmt.Fprintln(out, s.line(res))
	}
}

func outputDetectJSON(cmd *cobra.Command, results []*filemagic.Result) error {
	out := make([]detectOutput, 0, len(results))
	for _, res := range results {
		out = append(out, toDetectOutput(res))
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func toDetectOutput(res *filemagic.Result) detectOutput {
	o := detectOutput{
		Path:      res.Path,
		Kind:      res.Kind.String(),
		MIME:      res.MIME,
		Extension: res.Extension,
		BytesRead: res.BytesRead,
		ReadSize:  res.ReadSize,
		Checksum:  res.Checksum,
		Duration:  res.Duration.String(),
	}
	if res.Err != nil {
		o.Error = res.Err.Error()
	}
	return o
}
