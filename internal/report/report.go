package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/violations/internal/schemas"
	"github.com/jonathan/violations/internal/types"
	"github.com/jonathan/violations/internal/violation"
)

// Options controls how report files are loaded
type Options struct {
	SchemaPath  string             // Replaces the built-in schema when set
	MaxParallel int                // Files read at once, 0 or less means unlimited
	Logger      *zap.SugaredLogger // Optional
}

func (o *Options) logger() *zap.SugaredLogger {
	if o == nil || o.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return o.Logger
}

// Load reads a single report file into a new list
func Load(path string, opts *Options) (*violation.List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	if opts != nil && opts.SchemaPath != "" {
		err = schemas.ValidateJSON(opts.SchemaPath, path)
	} else {
		err = schemas.ValidateViolationReport(data)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Message: "schema check failed", Cause: err}
	}

	var doc types.ViolationReport
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to unmarshal report JSON", Cause: err}
	}
	if err := doc.Validate(); err != nil {
		return nil, &LoadError{Path: path, Message: "invalid report", Cause: err}
	}

	list := FromDocument(&doc)
	opts.logger().Debugw("Loaded report", "path", path, "violations", list.Len())
	return list, nil
}

// LoadFiles reads the given files concurrently and merges them, in argument
// order, into one list.
func LoadFiles(ctx context.Context, paths []string, opts *Options) (*violation.List, error) {
	lists := make([]*violation.List, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if opts != nil && opts.MaxParallel > 0 {
		g.SetLimit(opts.MaxParallel)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			list, err := Load(path, opts)
			if err != nil {
				return err
			}
			lists[i] = list
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := violation.NewList()
	for _, list := range lists {
		merged.AddAll(list)
	}
	opts.logger().Infow("Merged reports", "files", len(paths), "violations", merged.Len())
	return merged, nil
}

// FromDocument converts a decoded report into a list, one Add per record
func FromDocument(doc *types.ViolationReport) *violation.List {
	list := violation.NewList()
	if doc == nil {
		return list
	}
	for _, rec := range doc.Violations {
		var opts []violation.Option
		if rec.Code != nil {
			opts = append(opts, violation.WithCode(*rec.Code))
		}
		if rec.Plural != nil {
			opts = append(opts, violation.WithPlural(*rec.Plural))
		}
		list.Add(violation.NewConstraintViolation(
			rec.Message,
			rec.MessageTemplate,
			rec.Parameters,
			nil,
			rec.PropertyPath,
			rec.InvalidValue,
			opts...,
		))
	}
	return list
}

// ToDocument converts a list into a report stamped with a fresh report ID.
// Only ConstraintViolation values carry more than message and code.
func ToDocument(list violation.Interface) *types.ViolationReport {
	id := uuid.New()
	doc := &types.ViolationReport{
		ReportID:   &id,
		Violations: make([]types.ViolationRecord, 0, list.Len()),
	}

	for v := range list.Values() {
		rec := types.ViolationRecord{Message: v.Message()}
		if code, ok := v.Code(); ok {
			rec.Code = &code
		}
		if cv, ok := v.(*violation.ConstraintViolation); ok {
			rec.MessageTemplate = cv.MessageTemplate()
			rec.Parameters = cv.Parameters()
			rec.PropertyPath = cv.PropertyPath()
			rec.InvalidValue = cv.InvalidValue()
			if plural, ok := cv.Plural(); ok {
				rec.Plural = &plural
			}
		}
		doc.Violations = append(doc.Violations, rec)
	}
	return doc
}

// Write stores list as a report document at path, creating parent directories
func Write(path string, list violation.Interface) (*types.ViolationReport, error) {
	doc := ToDocument(list)

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return nil, fmt.Errorf("failed to write report file: %w", err)
	}
	return doc, nil
}
