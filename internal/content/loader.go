package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v2"

	"github.com/Geet-manik/LearnTreeEdu/internal/model"
)

// ErrLoad marks every failure to fetch or parse the content document.
var ErrLoad = errors.New("unable to load content document")

const fetchTimeout = 10 * time.Second

// Load reads the content document from a file path or an http(s) URL and
// decodes it according to its extension (.json, .yaml/.yml, .md).
func Load(ctx context.Context, source string) (*model.ContentDocument, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("%w: no source configured", ErrLoad)
	}

	var (
		raw []byte
		err error
		ext string
	)
	if isRemote(source) {
		raw, err = fetch(ctx, source)
		ext = strings.ToLower(path.Ext(strings.SplitN(source, "?", 2)[0]))
	} else {
		raw, err = os.ReadFile(source)
		ext = strings.ToLower(filepath.Ext(source))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, source, err)
	}

	doc, err := Decode(raw, ext)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, source, err)
	}
	return doc, nil
}

// Decode parses raw document bytes. An empty or unknown extension is treated
// as JSON.
func Decode(raw []byte, ext string) (*model.ContentDocument, error) {
	doc := &model.ContentDocument{}
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case ".md", ".markdown":
		body, err := frontmatter.Parse(bytes.NewReader(raw), doc)
		if err != nil {
			return nil, fmt.Errorf("decode front matter: %w", err)
		}
		fillAboutFromBody(doc, body)
	default:
		if err := json.Unmarshal(raw, doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	}
	return doc, nil
}

// fillAboutFromBody uses the blank-line separated paragraphs of a front
// matter document's body as about.paragraphs when none were given.
func fillAboutFromBody(doc *model.ContentDocument, body []byte) {
	paras := splitParagraphs(string(body))
	if len(paras) == 0 {
		return
	}
	if doc.About == nil {
		doc.About = &model.About{}
	}
	if len(doc.About.Paragraphs) == 0 {
		doc.About.Paragraphs = paras
	}
}

func splitParagraphs(body string) []string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	var out []string
	for _, block := range strings.Split(body, "\n\n") {
		lines := strings.Fields(block)
		if len(lines) == 0 {
			continue
		}
		out = append(out, strings.Join(lines, " "))
	}
	return out
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.5")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
