package atlasshift

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	eng "github.com/reoring/atlasshift/internal/engine"
)

// Shifter applies a numeric adjustment to every frame of an atlas document.
// A Shifter holds no per-run state and may be reused.
type Shifter struct {
	opt    Options
	driver JSONDriver
	log    *zap.Logger
}

// NewShifter validates opt and returns a Shifter. A nil logger disables logging.
func NewShifter(opt Options, logger *zap.Logger) (*Shifter, error) {
	if len(opt.Field) == 0 {
		opt.Field = DefaultField
	}
	if opt.Indent < 0 {
		return nil, fmt.Errorf("indent must not be negative, got %d", opt.Indent)
	}
	d, ok := LookupJSONDriver(opt.Driver)
	if !ok {
		return nil, fmt.Errorf("unknown JSON driver %q (available: %v)", opt.Driver, JSONDriverNames())
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shifter{opt: opt, driver: d, log: logger}, nil
}

// Shift reads inputPath, adjusts every frame and writes outputPath, using
// DefaultOptions.
func Shift(ctx context.Context, inputPath, outputPath string) error {
	s, err := NewShifter(DefaultOptions(), nil)
	if err != nil {
		return err
	}
	_, err = s.Shift(ctx, inputPath, outputPath)
	return err
}

// Shift reads inputPath, adjusts every frame and atomically writes the result
// to outputPath. inputPath is never modified. On error nothing is written.
func (s *Shifter) Shift(ctx context.Context, inputPath, outputPath string) (Report, error) {
	rep := Report{Input: inputPath, Output: outputPath, Driver: s.driver.Name()}
	data, err := s.read(inputPath)
	if err != nil {
		return rep, err
	}
	if err := ctx.Err(); err != nil {
		return rep, err
	}
	out, n, err := s.transform(data, inputPath)
	if err != nil {
		return rep, err
	}
	rep.Frames = n
	if err := ctx.Err(); err != nil {
		return rep, err
	}
	if err := writeFileAtomic(outputPath, out, 0o644); err != nil {
		return rep, fileError(KindWriteFailure, outputPath, err)
	}
	s.log.Info("atlas shifted",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Int("frames", n),
		zap.Stringer("field", s.opt.Field),
		zap.Int64("delta", s.opt.Delta),
	)
	return rep, nil
}

// Transform applies the adjustment to an in-memory document.
func (s *Shifter) Transform(ctx context.Context, data []byte) ([]byte, Report, error) {
	rep := Report{Driver: s.driver.Name()}
	if err := ctx.Err(); err != nil {
		return nil, rep, err
	}
	if s.opt.MaxBytes > 0 && int64(len(data)) > s.opt.MaxBytes {
		return nil, rep, issuesError(KindMalformedInput, "", tooLarge(s.opt.MaxBytes))
	}
	out, n, err := s.transform(data, "")
	rep.Frames = n
	return out, rep, err
}

// Check reads and validates inputPath without writing anything.
func (s *Shifter) Check(ctx context.Context, inputPath string) (Report, error) {
	rep := Report{Input: inputPath, Driver: s.driver.Name()}
	data, err := s.read(inputPath)
	if err != nil {
		return rep, err
	}
	if err := ctx.Err(); err != nil {
		return rep, err
	}
	doc, err := s.parse(data, inputPath)
	if err != nil {
		return rep, err
	}
	rep.Frames = len(doc.Frames)
	return rep, nil
}

func (s *Shifter) read(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fileError(KindFileNotFound, path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if s.opt.MaxBytes > 0 {
		r = io.LimitReader(f, s.opt.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fileError(KindFileNotFound, path, err)
	}
	if s.opt.MaxBytes > 0 && int64(len(data)) > s.opt.MaxBytes {
		return nil, issuesError(KindMalformedInput, path, tooLarge(s.opt.MaxBytes))
	}
	return data, nil
}

func (s *Shifter) parse(data []byte, path string) (*AtlasDocument, error) {
	root, err := decodeValue(s.driver, data, eng.EnforceOptions{
		OnDuplicate: toEngineDup(s.opt.OnDuplicateKey),
		MaxDepth:    s.opt.MaxDepth,
		FailFast:    s.opt.FailFast,
		IssueSink: func(si eng.SimpleIssue) {
			s.log.Warn("duplicate key in input",
				zap.String("file", path),
				zap.String("path", si.Path),
				zap.String("message", si.Message),
			)
		},
	})
	if err != nil {
		return nil, asKind(KindMalformedInput, path, err)
	}
	doc, err := NewAtlasDocument(root, s.opt.Field, s.opt.FailFast)
	if err != nil {
		return nil, asKind(KindSchemaViolation, path, err)
	}
	return doc, nil
}

func (s *Shifter) transform(data []byte, path string) ([]byte, int, error) {
	doc, err := s.parse(data, path)
	if err != nil {
		return nil, 0, err
	}
	if err := doc.Shift(s.opt.Delta); err != nil {
		return nil, 0, asKind(KindSchemaViolation, path, err)
	}
	out, err := Encode(doc.Root, EncodeOptions{Indent: s.opt.Indent, ASCIIOnly: s.opt.ASCIIOnly})
	if err != nil {
		return nil, 0, fileError(KindWriteFailure, path, err)
	}
	s.log.Debug("frames adjusted", zap.String("file", path), zap.Int("frames", len(doc.Frames)))
	return out, len(doc.Frames), nil
}

func asKind(kind Kind, path string, err error) error {
	var iss Issues
	if errors.As(err, &iss) {
		return issuesError(kind, path, iss)
	}
	return &Error{Kind: kind, Path: path, Err: err}
}

func tooLarge(max int64) Issues {
	return AppendIssues(nil, Root().Issue(CodeTruncated, "max bytes exceeded", "max", max))
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case SeverityError:
		return eng.DupError
	case SeverityWarn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}
