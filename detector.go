package filemagic

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gobeaver/beaver-kit/config"
	"github.com/gobeaver/filemagic/magic"
	"github.com/rs/zerolog"
)

// Global instance
var (
	defaultDetector *Detector
	defaultOnce     sync.Once
	defaultErr      error
)

// Detector reads file headers and classifies them against a rule table.
// A Detector is safe for concurrent use.
type Detector struct {
	source   HeaderSource
	rules    []magic.Rule
	logger   zerolog.Logger
	strategy string
	checksum ChecksumAlgorithm
	readSize int
	workers  int
}

// Builder provides a way to create Detector instances with custom prefixes
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// Init initializes the global Detector instance using the builder's prefix
func (b *Builder) Init() error {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return err
	}
	return Init(cfg)
}

// New creates a new Detector instance using the builder's prefix
func (b *Builder) New(opts ...Option) (*Detector, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// Init initializes the global detector instance
func Init(configs ...*Config) error {
	defaultOnce.Do(func() {
		var cfg *Config
		if len(configs) > 0 {
			cfg = configs[0]
		} else {
			cfg, defaultErr = GetConfig()
			if defaultErr != nil {
				return
			}
		}

		defaultDetector, defaultErr = New(cfg)
	})

	return defaultErr
}

// New creates a detector with the given config. A nil config means DefaultConfig.
func New(cfg *Config, opts ...Option) (*Detector, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	d := &Detector{
		source:   osSource{},
		logger:   zerolog.Nop(),
		strategy: cfg.Strategy,
		checksum: ChecksumAlgorithm(cfg.Checksum),
		workers:  cfg.Workers,
	}
	for _, opt := range opts {
		opt(d)
	}

	if cfg.LogLevel != "" {
		level, _ := zerolog.ParseLevel(cfg.LogLevel)
		d.logger = d.logger.Level(level)
	}

	switch {
	case cfg.ReadSize > 0:
		d.readSize = cfg.ReadSize
	case d.rules != nil:
		d.readSize = magic.RecommendedReadSizeFor(d.rules)
	default:
		d.readSize = magic.RecommendedReadSize()
	}

	return d, nil
}

// Default returns the global instance, initializing it from the environment
// on first use. Safe for concurrent use.
func Default() (*Detector, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return defaultDetector, nil
}

// NewFromEnv creates instance from environment variables (convenience constructor)
func NewFromEnv(opts ...Option) (*Detector, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// InitFromEnv initializes the global instance from environment variables (convenience method)
func InitFromEnv() error {
	return Init()
}

// Reset clears the global instance (for testing)
func Reset() {
	defaultDetector = nil
	defaultOnce = sync.Once{}
	defaultErr = nil
}

// ReadSize returns the number of header bytes read per file.
func (d *Detector) ReadSize() int {
	return d.readSize
}

// Classify matches an already read header using the configured strategy.
func (d *Detector) Classify(header []byte) magic.Kind {
	rules := d.rules
	if rules == nil {
		return d.classifyBuiltin(header)
	}

	switch d.strategy {
	case StrategyBounded:
		return magic.MatchRulesBounded(header, rules, d.readSize)
	case StrategyLongEnough:
		if len(header) < d.readSize {
			return magic.Unknown
		}
	}
	return magic.MatchRules(header, rules)
}

func (d *Detector) classifyBuiltin(header []byte) magic.Kind {
	switch d.strategy {
	case StrategyBounded:
		return magic.MatchBounded(header, d.readSize)
	case StrategyLongEnough:
		return magic.MatchIfLongEnough(header, d.readSize)
	default:
		return magic.Match(header)
	}
}

// DetectBytes classifies data as if it were the content of a file: at most
// ReadSize bytes of it are considered.
func (d *Detector) DetectBytes(data []byte) *Result {
	start := time.Now()
	if len(data) > d.readSize {
		data = data[:d.readSize]
	}
	return d.finish("", data, start)
}

// DetectReader reads a header from r and classifies it. name is only
// used to label the result.
func (d *Detector) DetectReader(ctx context.Context, name string, r io.Reader) (*Result, error) {
	start := time.Now()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	header, err := ReadHeaderFrom(r, d.readSize)
	if err != nil {
		err = &PathError{Op: "read", Path: name, Err: err}
		d.logger.Debug().Err(err).Str("path", name).Msg("header read failed")
		return nil, err
	}
	return d.finish(name, header, start), nil
}

// Detect reads the header of path through the detector's source and classifies it.
func (d *Detector) Detect(ctx context.Context, path string) (*Result, error) {
	return d.detectFrom(ctx, d.source, path)
}

func (d *Detector) detectFrom(ctx context.Context, src HeaderSource, path string) (*Result, error) {
	start := time.Now()

	header, err := ReadHeaderContext(ctx, src, path, d.readSize)
	if err != nil {
		d.logger.Debug().Err(err).Str("path", path).Msg("header read failed")
		return nil, err
	}
	return d.finish(path, header, start), nil
}

func (d *Detector) finish(path string, header []byte, start time.Time) *Result {
	kind := d.Classify(header)
	res := &Result{
		Path:      path,
		Kind:      kind,
		MIME:      kind.MIME(),
		Extension: kind.Extension(),
		BytesRead: len(header),
		ReadSize:  d.readSize,
	}

	sum, err := headerChecksum(header, d.checksum)
	if err != nil {
		// validateConfig has already vetted the algorithm
		d.logger.Warn().Err(err).Msg("header checksum failed")
	}
	res.Checksum = sum
	res.Duration = time.Since(start)

	d.logger.Debug().
		Str("path", path).
		Stringer("kind", kind).
		Int("bytes", res.BytesRead).
		Dur("duration", res.Duration).
		Msg("detected")

	return res
}

type detectJob struct {
	index int
	path  string
}

// DetectAll detects every path using a pool of Workers goroutines.
// Results are returned in the order of paths; a failed detection carries its
// error in Result.Err. Once ctx is done, remaining paths fail with ctx.Err().
func (d *Detector) DetectAll(ctx context.Context, paths []string) []*Result {
	results := make([]*Result, len(paths))
	if len(paths) == 0 {
		return results
	}

	workers := d.workers
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan detectJob, workers*2)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				res, err := d.Detect(ctx, job.path)
				if err != nil {
					res = &Result{Path: job.path, ReadSize: d.readSize, Err: err}
				}
				results[job.index] = res
			}
		}()
	}

	for i, p := range paths {
		jobs <- detectJob{index: i, path: p}
	}
	close(jobs)
	wg.Wait()

	d.logger.Info().Int("files", len(paths)).Int("workers", workers).Msg("batch detection finished")
	return results
}

// DetectBytes classifies data with the global detector.
func DetectBytes(data []byte) (*Result, error) {
	d, err := Default()
	if err != nil {
		return nil, err
	}
	return d.DetectBytes(data), nil
}

// Detect classifies path with the global detector.
func Detect(ctx context.Context, path string) (*Result, error) {
	d, err := Default()
	if err != nil {
		return nil, err
	}
	return d.Detect(ctx, path)
}
