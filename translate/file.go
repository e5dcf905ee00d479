package translate

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"path"
	"regexp"
	"strings"

	"github.com/asheesh-yadav/leximorph"
	"github.com/beevik/etree"
)

// FileTypes are the file extensions TranslateFile accepts.
var FileTypes = []string{".docx", ".pptx", ".xlsx", ".txt", ".srt"}

var (
	srtSequenceRE = regexp.MustCompile(`^\d+$`)
	srtTimecodeRE = regexp.MustCompile(`\d{2}:\d{2}:\d{2},\d{3}\s+-->\s+\d{2}:\d{2}:\d{2},\d{3}`)
)

// xmlPart selects the parts of an Office package to translate and the text
// elements within them.
type xmlPart struct {
	match func(name string) bool
	path  string
}

var officeParts = map[string][]xmlPart{
	".docx": {
		{match: exact("word/document.xml"), path: "//w:t"},
	},
	".pptx": {
		{match: glob("ppt/slides/slide*.xml"), path: "//a:t"},
	},
	".xlsx": {
		{match: exact("xl/sharedStrings.xml"), path: "//t"},
		{match: glob("xl/worksheets/sheet*.xml"), path: "//is/t"},
	},
}

// TranslatedFileName is the name given to the translated copy of a file.
func TranslatedFileName(name string) string {
	return "translated_" + path.Base(name)
}

// TranslateFile translates the text of a document into targetLang and
// returns the translated document in the same format. The format is chosen
// by the extension of name: Office packages keep their layout and only the
// text runs change, plain text is translated line by line, and subtitles
// keep their sequence numbers and timecodes.
func (s *Service) TranslateFile(ctx context.Context, name string, data []byte, targetLang string) ([]byte, error) {
	target := ResolveLanguage(targetLang)
	ext := strings.ToLower(path.Ext(name))
	switch ext {
	case ".docx", ".pptx", ".xlsx":
		return s.translatePackage(ctx, data, officeParts[ext], target)
	case ".txt":
		return s.translateLines(ctx, data, target, func(line string) bool {
			return strings.TrimSpace(line) != ""
		})
	case ".srt":
		return s.translateLines(ctx, data, target, func(line string) bool {
			line = strings.TrimSpace(line)
			return line != "" && !srtSequenceRE.MatchString(line) && !srtTimecodeRE.MatchString(line)
		})
	}
	return nil, leximorph.Errorf(leximorph.EINVALID, "unsupported file type %q: use one of %s", ext, strings.Join(FileTypes, ", "))
}

// translateLines translates each line accepted by translatable. Line
// endings are normalized to \n.
func (s *Service) translateLines(ctx context.Context, data []byte, target string, translatable func(string) bool) ([]byte, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for i, line := range lines {
		if !translatable(line) {
			continue
		}
		translated, err := s.text(ctx, line, leximorph.AutoLanguage, target)
		if err != nil {
			return nil, err
		}
		lines[i] = translated
	}
	return []byte(strings.Join(lines, "\n")), nil
}

// translatePackage rewrites the matching XML parts of an Office zip package
// and copies every other entry unchanged.
func (s *Service) translatePackage(ctx context.Context, data []byte, parts []xmlPart, target string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, leximorph.Errorf(leximorph.EINVALID, "not an Office document: %v", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	translatedParts := 0
	for _, f := range zr.File {
		part, ok := findPart(parts, f.Name)
		if !ok {
			if err := zw.Copy(f); err != nil {
				return nil, err
			}
			continue
		}

		out, err := s.translatePart(ctx, f, part.path, target)
		if err != nil {
			return nil, err
		}
		w, err := zw.CreateHeader(&zip.FileHeader{Name: f.Name, Method: zip.Deflate, Modified: f.Modified})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(out); err != nil {
			return nil, err
		}
		translatedParts++
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	if translatedParts == 0 {
		return nil, leximorph.Errorf(leximorph.EINVALID, "no translatable text found in document")
	}
	return buf.Bytes(), nil
}

// translatePart translates the text of every element matching the etree
// path in one package entry.
func (s *Service) translatePart(ctx context.Context, f *zip.File, elementPath, target string) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, leximorph.Errorf(leximorph.EINVALID, "parsing %s: %v", f.Name, err)
	}

	for _, el := range doc.FindElements(elementPath) {
		text := el.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		translated, err := s.text(ctx, text, leximorph.AutoLanguage, target)
		if err != nil {
			return nil, err
		}
		el.SetText(translated)
		if translated != strings.TrimSpace(translated) && el.SelectAttr("xml:space") == nil {
			el.CreateAttr("xml:space", "preserve")
		}
	}
	return doc.WriteToBytes()
}

func findPart(parts []xmlPart, name string) (xmlPart, bool) {
	for _, p := range parts {
		if p.match(name) {
			return p, true
		}
	}
	return xmlPart{}, false
}

func exact(want string) func(string) bool {
	return func(name string) bool { return name == want }
}

func glob(pattern string) func(string) bool {
	return func(name string) bool {
		ok, _ := path.Match(pattern, name)
		return ok
	}
}
