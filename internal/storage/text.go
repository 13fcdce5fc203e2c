package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// TextStore keeps the leaderboard as lines of "<score> <NAME>" in a text
// file. The file is opened and closed for every operation so several
// processes can append to the same leaderboard. Safe for concurrent use.
type TextStore struct {
	mu   sync.Mutex
	path string
}

// OpenText returns a text leaderboard at path, creating parent directories.
// The file itself is created on first write.
func OpenText(path string) (*TextStore, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if err := mkdirFor(path); err != nil {
		return nil, err
	}
	return &TextStore{path: path}, nil
}

// Path returns the leaderboard file.
func (s *TextStore) Path() string { return s.path }

// Append writes one complete record on its own line. A bare score left
// unterminated by AppendScore or an older writer is closed first, so the
// record never merges into it.
func (s *TextStore) Append(e Entry) error {
	line := strconv.Itoa(e.Score)
	if e.Name != "" {
		line += " " + e.Name
	}
	return s.write(line+"\n", true)
}

// AppendScore writes a bare score with no line break, the first half of the
// two-step record. AppendName completes the line.
func (s *TextStore) AppendScore(score int) error {
	return s.write(strconv.Itoa(score), true)
}

// AppendName completes a line started by AppendScore.
func (s *TextStore) AppendName(name string) error {
	return s.write(" "+name+"\n", false)
}

// write appends text. With newLine set, text starts on a fresh line even if
// the file ends mid-line.
func (s *TextStore) write(text string, newLine bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("storage: cannot open leaderboard: %w", err)
	}
	if newLine {
		open, err := endsMidLine(f)
		if err != nil {
			f.Close()
			return fmt.Errorf("storage: cannot read leaderboard: %w", err)
		}
		if open {
			text = "\n" + text
		}
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return fmt.Errorf("storage: cannot write leaderboard: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("storage: cannot close leaderboard: %w", err)
	}
	return nil
}

// endsMidLine reports whether f is non-empty and its last byte is not a
// line break.
func endsMidLine(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil || info.Size() == 0 {
		return false, err
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] != '\n', nil
}

// All returns every well-formed record in file order.
// A missing file is an empty leaderboard.
func (s *TextStore) All() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open leaderboard: %w", err)
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if e, ok := parseLine(sc.Text()); ok {
			entries = append(entries, e)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read leaderboard: %w", err)
	}
	return entries, nil
}

// parseLine accepts "<score>" or "<score> <name>".
func parseLine(line string) (Entry, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || len(fields) > 2 {
		return Entry{}, false
	}
	score, err := strconv.Atoi(fields[0])
	if err != nil || score < 0 {
		return Entry{}, false
	}
	e := Entry{Score: score}
	if len(fields) == 2 {
		e.Name = fields[1]
	}
	return e, true
}

// LastEntries returns up to n of the newest records, oldest first.
func (s *TextStore) LastEntries(n int) ([]Entry, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}
	n = min(clampRecent(n), len(all))
	return all[len(all)-n:], nil
}

// TopScores returns up to n records by score, highest first. Ties keep file order.
func (s *TextStore) TopScores(n int) ([]Entry, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(all, func(a, b Entry) int { return b.Score - a.Score })
	if n > 0 && n < len(all) {
		all = all[:n]
	}
	return all, nil
}

// Close is a no-op; the file is never held open.
func (s *TextStore) Close() error { return nil }

var _ Leaderboard = (*TextStore)(nil)
