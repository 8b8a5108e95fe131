package export

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompilePDF_EmptyDocument(t *testing.T) {
	svc := NewService()

	_, err := svc.CompilePDF(context.Background(), "   \n\t")
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestCompilePDF_MissingCompiler(t *testing.T) {
	svc := &Service{latexmkPath: "/nonexistent/latexmk"}

	_, err := svc.CompilePDF(context.Background(), `\documentclass{article}\begin{document}hi\end{document}`)

	var compileErr *CompileError
	assert.True(t, errors.As(err, &compileErr))
}

func TestLogTail_TruncatesLongOutput(t *testing.T) {
	long := make([]byte, 5000)
	for i := range long {
		long[i] = 'x'
	}

	tail := logTail(long)
	assert.Len(t, tail, 2048)
}
