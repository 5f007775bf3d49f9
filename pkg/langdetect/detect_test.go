package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/liuhaoxuan15/ftl-js-validator/pkg/langdetect"
)

func TestIsTemplateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"page.ftl", true},
		{"page.ftlh", true},
		{"page.ftlx", true},
		{"PAGE.FTL", true},
		{"dir/nested/view.ftl", true},
		{"page.html", false},
		{"page.md", false},
		{"ftl", false},
		{"", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, langdetect.IsTemplateExtension(testCase.path))
		})
	}
}

func TestIsTemplate_ExtensionWins(t *testing.T) {
	t.Parallel()

	assert.True(t, langdetect.IsTemplate("view.ftl", nil))
	assert.True(t, langdetect.IsTemplate("view.ftl", []byte("anything at all")))
	assert.False(t, langdetect.IsTemplate("view.txt", nil))
}

func TestIsTemplateLanguageID(t *testing.T) {
	t.Parallel()

	assert.True(t, langdetect.IsTemplateLanguageID("ftl"))
	assert.True(t, langdetect.IsTemplateLanguageID("FreeMarker"))
	assert.True(t, langdetect.IsTemplateLanguageID("html-freemarker"))
	assert.False(t, langdetect.IsTemplateLanguageID("html"))
	assert.False(t, langdetect.IsTemplateLanguageID(""))
}
