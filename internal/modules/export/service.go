package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var ErrEmptyDocument = errors.New("latex source is empty")

// CompileError carries the tail of the latexmk log for the error response.
type CompileError struct {
	Output string
}

func (e *CompileError) Error() string { return "latex compilation failed" }

// Service compiles LaTeX source to PDF by shelling out to latexmk. Each
// compilation runs in its own temp directory which is removed afterwards.
type Service struct {
	latexmkPath string
}

func NewService() *Service {
	return &Service{latexmkPath: "latexmk"}
}

func (s *Service) CompilePDF(ctx context.Context, latex string) ([]byte, error) {
	if strings.TrimSpace(latex) == "" {
		return nil, ErrEmptyDocument
	}

	dir, err := os.MkdirTemp("", "crm-export-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	texPath := filepath.Join(dir, "report.tex")
	if err := os.WriteFile(texPath, []byte(latex), 0o600); err != nil {
		return nil, fmt.Errorf("write tex source: %w", err)
	}

	cmd := exec.CommandContext(ctx, s.latexmkPath,
		"-pdf",
		"-interaction=nonstopmode",
		"-output-directory="+dir,
		texPath,
	)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, &CompileError{Output: logTail(out)}
	}

	pdf, err := os.ReadFile(filepath.Join(dir, "report.pdf"))
	if err != nil {
		return nil, &CompileError{Output: logTail(out)}
	}
	return pdf, nil
}

// logTail keeps the last part of the compiler output, where latexmk puts
// the actual error.
func logTail(out []byte) string {
	const max = 2048
	if len(out) <= max {
		return string(out)
	}
	return string(out[len(out)-max:])
}
