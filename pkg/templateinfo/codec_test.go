package templateinfo

import (
	"strings"
	"testing"

	"github.com/arthur-debert/lppm/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"header only", "LPPM TEMPLATE V1\n", []string{}},
		{"header without newline", "LPPM TEMPLATE V1", []string{}},
		{"header with surrounding whitespace", "  LPPM TEMPLATE V1\t\r\n", []string{}},
		{"blank commands line", "LPPM TEMPLATE V1\n   \n", []string{}},
		{"two commands", "LPPM TEMPLATE V1\n\"build.sh\";\"test.sh\";\n", []string{"build.sh", "test.sh"}},
		{"missing final semicolon", "LPPM TEMPLATE V1\n\"a\";\"b\"", []string{"a", "b"}},
		{"whitespace before semicolon", "LPPM TEMPLATE V1\n\"a\"  ;\"b\"\t;", []string{"a", "b"}},
		{"escaped quote", "LPPM TEMPLATE V1\n\"a\\\"b\";", []string{`a"b`}},
		{"escaped backslash", "LPPM TEMPLATE V1\n\"a\\\\b\";", []string{`a\b`}},
		{"escaped backslash before closing quote", "LPPM TEMPLATE V1\n\"dir\\\\\";", []string{`dir\`}},
		{"escape of ordinary char drops marker", "LPPM TEMPLATE V1\n\"\\n\";", []string{"n"}},
		{"empty command", "LPPM TEMPLATE V1\n\"\";", []string{""}},
		{"command with spaces and unicode", "LPPM TEMPLATE V1\n\"echo héllo wörld\";", []string{"echo héllo wörld"}},
		{"extra lines ignored", "LPPM TEMPLATE V1\n\"a\";\ngarbage here\n", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := Parse(strings.NewReader(tt.input), "test")
			require.NoError(t, err)
			assert.Equal(t, tt.want, info.Commands())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"empty file", "", "file is empty"},
		{"wrong version", "LPPM TEMPLATE V2\n", "header"},
		{"garbage header", "hello\n\"a\";", "header"},
		{"unquoted command", "LPPM TEMPLATE V1\nbuild.sh\n", "expected command list"},
		{"space between commands", "LPPM TEMPLATE V1\n\"a\"; \"b\";", "expected command list"},
		{"missing semicolon between commands", "LPPM TEMPLATE V1\n\"a\"\"b\";", "expected semicolon after `a`"},
		{"unterminated command", "LPPM TEMPLATE V1\n\"abc", "unfinished command `abc`"},
		{"dangling escape", "LPPM TEMPLATE V1\n\"abc\\", "unfinished command"},
		{"escaped closing quote", "LPPM TEMPLATE V1\n\"abc\\\";", "unfinished command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), "test")
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrFormat), "want FORMAT, got %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestMarshal(t *testing.T) {
	assert.Equal(t, "LPPM TEMPLATE V1\n", string(New().Marshal()))
	assert.Equal(t, "LPPM TEMPLATE V1\n\"build.sh\";\"test.sh\";\n", string(New("build.sh", "test.sh").Marshal()))
	assert.Equal(t, "LPPM TEMPLATE V1\n\"echo \\\"hi\\\" C:\\\\x\";\n", string(New(`echo "hi" C:\x`).Marshal()))
}

func TestRoundTrip(t *testing.T) {
	tests := [][]string{
		{},
		{"build.sh", "test.sh"},
		{`echo "quoted"`, `printf '%s\n' x`, `a\"b`},
		{"", "  leading and trailing  "},
	}

	for _, commands := range tests {
		original := New(commands...)
		parsed, err := ParseBytes(original.Marshal(), "roundtrip")
		require.NoError(t, err)
		assert.Equal(t, original.Commands(), parsed.Commands())

		again, err := ParseBytes(parsed.Marshal(), "roundtrip")
		require.NoError(t, err)
		assert.Equal(t, original.Commands(), again.Commands())
	}
}
