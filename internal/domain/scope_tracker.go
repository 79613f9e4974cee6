package domain

import (
	"strings"

	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

// frame records whether one nesting level is test-designated. Flags only ever
// propagate downwards, so the innermost frame answers for all enclosing ones.
type frame struct {
	cfgTest  bool
	attrTest bool

	// outerGroups is the ( [ depth of the parent, restored when this frame closes.
	outerGroups int
}

func (f frame) marked() bool {
	return f.cfgTest || f.attrTest
}

func (f frame) bucket() m.Bucket {
	switch {
	case f.cfgTest:
		return m.BucketCfgTestModule
	case f.attrTest:
		return m.BucketInlineTest
	default:
		return m.BucketReviewRequired
	}
}

// lexState carries the lexical context that can span physical lines.
type lexState struct {
	commentDepth int // nested /* */ depth
	inString     bool
	rawHashes    int // -1 unless inside a raw string r#"..."#
	groupDepth   int // open ( and [ not yet closed
}

// ScopeTracker resolves, line by line, whether source text sits inside a
// test-only block. It understands braces, comments and string literals and
// nothing else.
type ScopeTracker struct {
	markers MarkerSet

	frames  []frame
	pending frame
	lex     lexState
}

// NewScopeTracker creates a tracker that recognizes the given markers.
func NewScopeTracker(markers MarkerSet) *ScopeTracker {
	t := &ScopeTracker{markers: markers}
	t.Reset()

	return t
}

// Reset prepares the tracker for a new file.
func (t *ScopeTracker) Reset() {
	t.frames = append(t.frames[:0], frame{})
	t.pending = frame{}
	t.lex = lexState{rawHashes: -1}
}

// ClassifyLine returns the bucket of a single 1-based line of src.
func (t *ScopeTracker) ClassifyLine(src []byte, line int) m.Bucket {
	return t.ClassifyLines(src, []int{line})[line]
}

// ClassifyLines classifies every requested 1-based line of src in a single
// pass. Lines past the end of the file come back as review_required.
func (t *ScopeTracker) ClassifyLines(src []byte, lines []int) map[int]m.Bucket {
	t.Reset()

	wanted := make(map[int]struct{}, len(lines))
	result := make(map[int]m.Bucket, len(lines))

	last := 0
	for _, line := range lines {
		wanted[line] = struct{}{}
		result[line] = m.BucketReviewRequired
		last = max(last, line)
	}

	for i, text := range strings.Split(string(src), "\n") {
		number := i + 1
		if number > last {
			break
		}

		_, isTarget := wanted[number]
		bucket := t.step(strings.TrimSuffix(text, "\r"))

		if isTarget {
			result[number] = bucket
		}
	}

	return result
}

// step advances the tracker over one line and returns the bucket a construct
// on that line would get.
func (t *ScopeTracker) step(line string) m.Bucket {
	if t.lex.commentDepth == 0 && !t.lex.inString && t.lex.rawHashes < 0 {
		marks := t.markers.match(line)
		if marks.innerCfgTest {
			t.frames[len(t.frames)-1].cfgTest = true
		}

		t.pending.cfgTest = t.pending.cfgTest || marks.cfgTest
		t.pending.attrTest = t.pending.attrTest || marks.attrTest
	}

	bucket := t.top().bucket()

	opened, code := t.scan(line)

	if t.pending.marked() && t.lex.groupDepth == 0 && endsDeclaration(code) {
		t.pending = frame{}
	}

	// Compact forms like `#[test] fn f() { panic!() }` open and close their
	// scope on the construct's own line.
	if bucket == m.BucketReviewRequired && opened.marked() {
		bucket = opened.bucket()
	}

	return bucket
}

func (t *ScopeTracker) top() frame {
	return t.frames[len(t.frames)-1]
}

func (t *ScopeTracker) open() frame {
	parent := t.top()
	child := frame{
		cfgTest:     t.pending.cfgTest || parent.cfgTest,
		attrTest:    t.pending.attrTest || parent.attrTest,
		outerGroups: t.lex.groupDepth,
	}

	t.pending = frame{}
	t.lex.groupDepth = 0
	t.frames = append(t.frames, child)

	return child
}

func (t *ScopeTracker) close() {
	if len(t.frames) > 1 {
		t.lex.groupDepth = t.top().outerGroups
		t.frames = t.frames[:len(t.frames)-1]
	}

	// A marker cannot outlive the block it was written in.
	t.pending = frame{}
}

// scan walks the characters of line, applying braces outside comments and
// literals. It returns the union of the frames opened on this line and the
// line's code with comments removed.
func (t *ScopeTracker) scan(line string) (frame, string) {
	var (
		opened frame
		code   strings.Builder
	)

	runes := []rune(line)

	for i := 0; i < len(runes); i++ {
		c := runes[i]

		switch {
		case t.lex.commentDepth > 0:
			if c == '*' && next(runes, i) == '/' {
				t.lex.commentDepth--
				i++
			} else if c == '/' && next(runes, i) == '*' {
				t.lex.commentDepth++
				i++
			}

			continue

		case t.lex.rawHashes >= 0:
			code.WriteRune(c)

			if c == '"' && hashesFollow(runes, i+1, t.lex.rawHashes) {
				i += t.lex.rawHashes
				t.lex.rawHashes = -1
			}

			continue

		case t.lex.inString:
			code.WriteRune(c)

			if c == '\\' {
				i++
			} else if c == '"' {
				t.lex.inString = false
			}

			continue
		}

		switch c {
		case '/':
			if next(runes, i) == '/' {
				return opened, code.String()
			}

			if next(runes, i) == '*' {
				t.lex.commentDepth++
				i++

				continue
			}
		case '"':
			t.lex.inString = true
		case 'r':
			if hashes, ok := rawStringStart(runes, i); ok {
				t.lex.rawHashes = hashes
				code.WriteString(string(runes[i : i+hashes+2]))
				i += hashes + 1

				continue
			}
		case '\'':
			if width := charLiteralWidth(runes, i); width > 0 {
				code.WriteString(string(runes[i : i+width]))
				i += width - 1

				continue
			}
		case '(', '[':
			t.lex.groupDepth++
		case ')', ']':
			if t.lex.groupDepth > 0 {
				t.lex.groupDepth--
			}
		case '{':
			child := t.open()
			opened.cfgTest = opened.cfgTest || child.cfgTest
			opened.attrTest = opened.attrTest || child.attrTest
		case '}':
			t.close()
		}

		code.WriteRune(c)
	}

	return opened, code.String()
}

// endsDeclaration reports whether code ends a declaration without opening a
// block: `mod tests;`, `use x;`, a struct field or an enum variant. Callers
// only ask outside parentheses so multi-line parameter lists keep the marker.
func endsDeclaration(code string) bool {
	trimmed := strings.TrimSpace(code)
	return strings.HasSuffix(trimmed, ";") || strings.HasSuffix(trimmed, ",")
}

func next(runes []rune, i int) rune {
	if i+1 < len(runes) {
		return runes[i+1]
	}

	return 0
}

func hashesFollow(runes []rune, from, count int) bool {
	if from+count > len(runes) {
		return false
	}

	for _, c := range runes[from : from+count] {
		if c != '#' {
			return false
		}
	}

	return true
}

// rawStringStart detects r"..." and r#"..."# (also br"...") at i.
func rawStringStart(runes []rune, i int) (int, bool) {
	if i > 0 && isIdentRune(runes[i-1]) && runes[i-1] != 'b' {
		return 0, false
	}

	if i > 1 && runes[i-1] == 'b' && isIdentRune(runes[i-2]) {
		return 0, false
	}

	hashes := 0
	for j := i + 1; j < len(runes); j++ {
		switch runes[j] {
		case '#':
			hashes++
		case '"':
			return hashes, true
		default:
			return 0, false
		}
	}

	return 0, false
}

// charLiteralWidth returns the rune width of a character literal starting at
// i, or 0 when the quote starts a lifetime or label instead.
func charLiteralWidth(runes []rune, i int) int {
	if i+2 < len(runes) && runes[i+1] != '\\' && runes[i+2] == '\'' {
		return 3
	}

	if next(runes, i) != '\\' {
		return 0
	}

	// Escapes: '\n', '\'', '\x7f', '\u{1F600}'.
	for j := i + 3; j < len(runes) && j <= i+12; j++ {
		if runes[j] == '\'' {
			return j - i + 1
		}
	}

	return 0
}

func isIdentRune(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
