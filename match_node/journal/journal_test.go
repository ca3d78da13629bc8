package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GDVFox/gomatch/lib/go-automata"
)

func testFragment(startIndex, endIndex int) automata.Fragment {
	return automata.Fragment{
		Starting: automata.Position{Line: 1, Pos: startIndex + 1, Index: startIndex},
		Ending:   automata.Position{Line: 1, Pos: endIndex + 1, Index: endIndex},
	}
}

func TestJournalAppendList(t *testing.T) {
	j, err := NewJournal(&Config{Dir: t.TempDir()})
	assert.NoError(t, err)
	defer j.Close()

	fragments := []automata.Fragment{
		testFragment(0, 4),
		testFragment(7, 12),
		testFragment(20, 23),
	}
	for i, fragment := range fragments {
		seq, err := j.Append("scan-1", "comment", fragment)
		assert.NoError(t, err)
		assert.EqualValuesf(t, i, seq, "Failed #%d:", i)
	}
	assert.EqualValues(t, 3, j.Size())

	records, err := j.List(0)
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	for i, rec := range records {
		assert.EqualValuesf(t, i, rec.Seq(), "Failed #%d:", i)
		assert.EqualValuesf(t, "scan-1", rec.ScanName(), "Failed #%d:", i)
		assert.EqualValuesf(t, "comment", rec.PatternName(), "Failed #%d:", i)
		assert.EqualValuesf(t, fragments[i], rec.Fragment(), "Failed #%d:", i)
		assert.Falsef(t, rec.Time().IsZero(), "Failed #%d:", i)
	}
}

func TestJournalListLimit(t *testing.T) {
	j, err := NewJournal(&Config{Dir: t.TempDir()})
	assert.NoError(t, err)
	defer j.Close()

	for i := 0; i < 4; i++ {
		_, err := j.Append("scan-2", "word", testFragment(i, i+1))
		assert.NoError(t, err)
	}

	records, err := j.List(2)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.EqualValues(t, 0, records[0].Seq())
	assert.EqualValues(t, 1, records[1].Seq())

	// limit больше размера журнала не является ошибкой.
	records, err = j.List(100)
	assert.NoError(t, err)
	assert.Len(t, records, 4)
}

func TestJournalTrim(t *testing.T) {
	j, err := NewJournal(&Config{Dir: t.TempDir()})
	assert.NoError(t, err)
	defer j.Close()

	for i := 0; i < 5; i++ {
		_, err := j.Append("scan-3", "word", testFragment(i, i+1))
		assert.NoError(t, err)
	}

	trimmed, err := j.Trim(2)
	assert.NoError(t, err)
	assert.EqualValues(t, 3, trimmed)
	assert.EqualValues(t, 2, j.Size())

	records, err := j.List(0)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.EqualValues(t, 3, records[0].Seq())
	assert.EqualValues(t, 4, records[1].Seq())

	trimmed, err = j.Trim(100)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, trimmed)
	assert.EqualValues(t, 0, j.Size())

	// Обрезка пустого журнала ничего не делает.
	trimmed, err = j.Trim(100)
	assert.NoError(t, err)
	assert.EqualValues(t, 0, trimmed)
}

func TestJournalRecovery(t *testing.T) {
	dir := t.TempDir()

	j, err := NewJournal(&Config{Dir: dir})
	assert.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := j.Append("scan-4", "comment", testFragment(i, i+2))
		assert.NoError(t, err)
	}
	_, err = j.Trim(0)
	assert.NoError(t, err)
	assert.NoError(t, j.Close())

	// После переоткрытия границы очереди и нумерация сохраняются.
	j, err = NewJournal(&Config{Dir: dir})
	assert.NoError(t, err)
	defer j.Close()
	assert.EqualValues(t, 2, j.Size())

	records, err := j.List(0)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.EqualValues(t, 1, records[0].Seq())
	assert.EqualValues(t, 2, records[1].Seq())

	seq, err := j.Append("scan-4", "comment", testFragment(10, 12))
	assert.NoError(t, err)
	assert.EqualValues(t, 3, seq)
}
