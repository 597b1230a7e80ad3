package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"text/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	"github.com/hashicorp/go-multierror"
	"github.com/iotcore-tools/iotctl/pkg/cmdutil"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// NewGenerateCmd returns the hidden command building the reference documentation
func NewGenerateCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:                   "generate {man|markdown|html|all}",
		Aliases:               []string{"gen"},
		Hidden:                true,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"man", "markdown", "md", "html", "all"},
		Args:                  cmdutil.FlagErrorArgs(cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)),
		Short:                 "Generates reference documentation for iotctl",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return err
				}
				dir = cwd
			}
			switch args[0] {
			case "man":
				return generateManPages(cmd, filepath.Join(dir, "build", "man"))
			case "markdown", "md":
				return generateMarkdown(cmd, filepath.Join(dir, "docs"))
			case "html":
				return generateHTML(filepath.Join(dir, "docs"))
			case "all":
				var errs error
				if err := generateManPages(cmd, filepath.Join(dir, "build", "man")); err != nil {
					errs = multierror.Append(errs, err)
				}
				if err := generateMarkdown(cmd, filepath.Join(dir, "docs")); err != nil {
					errs = multierror.Append(errs, err)
				}
				if err := generateHTML(filepath.Join(dir, "docs")); err != nil {
					errs = multierror.Append(errs, err)
				}
				return errs
			default:
				return errors.New("Invalid argument")
			}
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "base directory of the generated files, default to the working directory")
	return cmd
}

func generateManPages(cmd *cobra.Command, path string) error {
	o := runtime.GOOS
	if o != "linux" && o != "darwin" {
		return errors.New("Man pages not available for this OS")
	}
	if err := os.MkdirAll(path, 0700); err != nil {
		return err
	}

	err := doc.GenManTree(cmd.Root(), &doc.GenManHeader{
		Title:   "IOTCTL",
		Section: "1",
	}, path)
	if err != nil {
		return err
	}

	files, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) == ".gz" {
			continue
		}
		if err := compressManPage(filepath.Join(path, f.Name())); err != nil {
			return err
		}
	}
	return nil
}

// compressManPage replaces the file at name with a gzip compressed copy.
func compressManPage(name string) error {
	b, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	out, err := os.OpenFile(name+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer out.Close()

	w, err := gzip.NewWriterLevel(out, gzip.BestCompression)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return os.Remove(name)
}

func generateMarkdown(cmd *cobra.Command, path string) error {
	if err := os.MkdirAll(path, 0700); err != nil {
		return err
	}
	return doc.GenMarkdownTree(cmd.Root(), path)
}

func generateHTML(path string) error {
	return filepath.Walk(path, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		regex := regexp.MustCompile(`\.md$`)
		if !regex.MatchString(info.Name()) {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		opts := html.RendererOptions{
			Flags:          html.FlagsNone,
			RenderNodeHook: renderHook,
		}
		renderer := html.NewRenderer(opts)
		output := string(markdown.ToHTML(b, nil, renderer))

		t := template.New("Render")
		t, err = t.Parse(htmlHeader + `{{.}}` + htmlFooter)
		t = template.Must(t, err)

		var processed bytes.Buffer
		if err := t.Execute(&processed, output); err != nil {
			return err
		}

		// Hack because markdown mishandles code blocks in the renderHook
		processedString := strings.ReplaceAll(processed.String(), `<pre>`, `<pre class="code-editor margin-bottom">`)
		processed = *bytes.NewBufferString(processedString)

		htmlName := strings.Replace(path, ".md", ".html", 1)
		if err := os.WriteFile(htmlName, processed.Bytes(), 0644); err != nil {
			return err
		}
		return nil
	})
}

func renderHook(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
	if _, ok := node.(*ast.Heading); ok {
		level := strconv.Itoa(node.(*ast.Heading).Level)

		if entering {
			if level == "3" {
				w.Write([]byte(`<hr class="margin-bottom"><h3 class="emphasize text-left margin-bottom-small">`))
			} else {
				w.Write([]byte(fmt.Sprintf(`<h%s class="text-center margin-bottom">`, level)))
			}
		} else {
			w.Write([]byte(fmt.Sprintf(`</h%s>`, level)))
		}

		return ast.GoToNext, true
	} else if _, ok := node.(*ast.Link); ok {
		href := string(node.(*ast.Link).Destination)

		if entering {
			htmlRef := strings.Replace(href, ".md", ".html", 1)
			w.Write([]byte(fmt.Sprintf(`<a href="%s">`, htmlRef)))
		} else {
			w.Write([]byte("</a>"))
		}
		return ast.GoToNext, true
	} else if p, ok := node.(*ast.Paragraph); ok {
		if _, ok := p.GetParent().(*ast.Link); ok {
			return ast.GoToNext, false
		}
		if entering {
			if _, ok := p.GetChildren()[0].(*ast.Link); ok {
				w.Write([]byte(`<p>`))
			} else {
				w.Write([]byte(`<p class="margin-bottom">`))
			}
		} else {
			w.Write([]byte(`</p>`))
		}
		return ast.GoToNext, true
	}
	return ast.GoToNext, false
}

const (
	htmlHeader string = `<head>
  <meta http-equiv="Content-Type" content="text/html; charset=UTF-8">
  <meta name="Description" content="iotctl Reference Guide">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <meta http-equiv="expires" content="0">
  <title>iotctl Reference Guide</title>
  <link rel="stylesheet" href="./assets/guide.css">
</head>
<body>
  <main class="page text-center">
    <div class="box">
      <h1 class="margin-top-small">iotctl Reference Guide</h1>
      <hr>
      <div class="content text-left">
`

	htmlFooter string = `
      </div>
    </div>
  </main>
</body>
</html>`
)
