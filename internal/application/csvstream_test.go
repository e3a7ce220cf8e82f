package application_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/reviewreport/internal/application"
)

func TestReportWriter_BOMThenHeader(t *testing.T) {
	var buf bytes.Buffer

	rw, err := application.NewReportWriter(&buf, []string{"Stage", "Round"})
	require.NoError(t, err)
	require.NoError(t, rw.Flush())

	assert.Equal(t, "\xEF\xBB\xBFStage,Round\n", buf.String())
	assert.Equal(t, 0, rw.Written())
}

func TestReportWriter_QuotesFields(t *testing.T) {
	var buf bytes.Buffer

	rw, err := application.NewReportWriter(&buf, []string{"a", "b", "c"})
	require.NoError(t, err)
	require.NoError(t, rw.Write([]string{`say "hi"`, "x, y", "line\nbreak"}))
	require.NoError(t, rw.Write([]string{"", "plain", "<p>html</p>"}))
	require.NoError(t, rw.Flush())

	want := "\xEF\xBB\xBFa,b,c\n" +
		`"say ""hi""","x, y","line` + "\n" + `break"` + "\n" +
		",plain,<p>html</p>\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 2, rw.Written())
}

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) { return 0, errors.New("connection reset") }

func TestReportWriter_BOMWriteError(t *testing.T) {
	rw, err := application.NewReportWriter(failingWriter{}, []string{"a"})
	assert.Nil(t, rw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "byte order mark")
}
