package analysis

import (
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/abdullahfazal969-alt/News-agent/internal/newswire"
)

// TestAnalyzeArticle_PropertyBased verifies the analyzer's purity and its
// categorization rule over arbitrary article inputs: identical input always
// yields an identical analysis, the summary carries the fixed shape, the
// entity list is never empty, and the category depends on nothing but the
// presence of the marker phrase in the content.
func TestAnalyzeArticle_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("analysis is a pure function of the article", prop.ForAll(
		func(slug string, technical bool) bool {
			content := "An article about " + slug + "."
			if technical {
				content += " It leans on AI engineering throughout."
			}
			article := newswire.RawArticle{
				URL:     "http://example.com/" + slug,
				Content: content,
			}

			first := AnalyzeArticle(article, 0)
			second := AnalyzeArticle(article, 0)

			if first.Summary != second.Summary ||
				first.Category != second.Category ||
				!reflect.DeepEqual(first.Entities, second.Entities) {
				t.Logf("analysis not reproducible for %q", article.URL)
				return false
			}
			return true
		},
		gen.Identifier(),
		gen.Bool(),
	))

	properties.Property("category follows the marker phrase", prop.ForAll(
		func(slug string, technical bool) bool {
			content := "An article about " + slug + "."
			if technical {
				content += " It leans on AI engineering throughout."
			}
			result := AnalyzeArticle(newswire.RawArticle{
				URL:     "http://example.com/" + slug,
				Content: content,
			}, 0)

			if technical {
				return result.Category == CategoryTechnology
			}
			return result.Category == CategoryGeneral
		},
		gen.Identifier(),
		gen.Bool(),
	))

	properties.Property("summary and entities keep their fixed shape", prop.ForAll(
		func(slug string) bool {
			url := "http://example.com/" + slug
			result := AnalyzeArticle(newswire.RawArticle{URL: url, Content: slug}, 0)

			return strings.HasPrefix(result.Summary, "Summary of "+url+": ") &&
				len(result.Entities) > 0
		},
		gen.Identifier(),
	))

	properties.TestingRun(t)
}
