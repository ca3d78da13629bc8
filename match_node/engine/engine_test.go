package engine

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GDVFox/gomatch/match_node/journal"
	"github.com/GDVFox/gomatch/match_node/pattern"
	"github.com/GDVFox/gomatch/util"
)

func testEngine(t *testing.T) *MatchEngine {
	logger, err := util.NewLogger(util.NewLoggingConfig())
	assert.NoError(t, err)

	e, err := newMatchEngine(logger, NewConfig(), &journal.Config{Dir: t.TempDir()})
	assert.NoError(t, err)
	return e
}

func TestRunScan(t *testing.T) {
	e := testEngine(t)
	defer e.Close()

	pats := []*pattern.Pattern{
		{Name: "ab", Type: pattern.TypeWord, Word: "ab"},
		{Name: "comments", Type: pattern.TypeComment},
	}

	report, err := e.RunScan(context.Background(), "scan-1", "ab {x} ab", pats)
	assert.NoError(t, err)
	assert.EqualValues(t, "scan-1", report.ScanID)

	// Текст целиком не принимается ни одним из шаблонов.
	assert.Len(t, report.Accepted, 2)
	assert.False(t, report.Accepted["ab"])
	assert.False(t, report.Accepted["comments"])

	assert.Len(t, report.Matches, 3)
	assert.EqualValues(t, "ab", report.Matches[0].Pattern)
	assert.EqualValues(t, 0, report.Matches[0].Fragment.Starting.Index)
	assert.EqualValues(t, "ab", report.Matches[1].Pattern)
	assert.EqualValues(t, 7, report.Matches[1].Fragment.Starting.Index)
	assert.EqualValues(t, "comments", report.Matches[2].Pattern)
	assert.EqualValues(t, 3, report.Matches[2].Fragment.Starting.Index)

	// Каждое совпадение попало в журнал, номера уникальны.
	assert.EqualValues(t, 3, e.JournalSize())
	seqs := make([]int, 0, len(report.Matches))
	for _, m := range report.Matches {
		seqs = append(seqs, int(m.Seq))
	}
	sort.Ints(seqs)
	assert.EqualValues(t, []int{0, 1, 2}, seqs)
}

func TestRunScanAcceptsWholeText(t *testing.T) {
	e := testEngine(t)
	defer e.Close()

	pats := []*pattern.Pattern{
		{Name: "greeting", Type: pattern.TypeWord, Word: "hello"},
	}

	report, err := e.RunScan(context.Background(), "scan-2", "hello", pats)
	assert.NoError(t, err)
	assert.True(t, report.Accepted["greeting"])
	assert.Len(t, report.Matches, 1)
	assert.EqualValues(t, 0, report.Matches[0].Fragment.Starting.Index)
	assert.EqualValues(t, 5, report.Matches[0].Fragment.Ending.Index)
}

func TestRunScanBrokenPattern(t *testing.T) {
	e := testEngine(t)
	defer e.Close()

	pats := []*pattern.Pattern{
		{Name: "bad", Type: "regexp", Word: "a+"},
	}

	_, err := e.RunScan(context.Background(), "scan-3", "text", pats)
	assert.Error(t, err)
}

func TestRunScanNoPatterns(t *testing.T) {
	e := testEngine(t)
	defer e.Close()

	report, err := e.RunScan(context.Background(), "scan-4", "text", nil)
	assert.NoError(t, err)
	assert.Empty(t, report.Accepted)
	assert.Empty(t, report.Matches)
	assert.EqualValues(t, 0, e.JournalSize())
}

func TestAck(t *testing.T) {
	e := testEngine(t)
	defer e.Close()

	pats := []*pattern.Pattern{
		{Name: "a", Type: pattern.TypeWord, Word: "a"},
	}

	_, err := e.RunScan(context.Background(), "scan-5", "aaa", pats)
	assert.NoError(t, err)
	assert.EqualValues(t, 3, e.JournalSize())

	records, err := e.Matches(2)
	assert.NoError(t, err)
	assert.Len(t, records, 2)

	trimmed, err := e.Ack(1)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, trimmed)
	assert.EqualValues(t, 1, e.JournalSize())
}
