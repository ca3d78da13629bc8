package journal

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/GDVFox/gomatch/lib/go-automata"
)

// recordHeader фиксированная часть записи журнала.
type recordHeader struct {
	Seq           uint64
	Unix          int64
	StartLine     int32
	StartPos      int32
	StartIndex    int32
	EndLine       int32
	EndPos        int32
	EndIndex      int32
	ScanIDLength  uint32
	PatternLength uint32
}

// Record одно совпадение, зафиксированное журналом.
type Record struct {
	Header  recordHeader
	ScanID  []byte
	Pattern []byte
}

func newRecord(scanID, pattern string, fragment automata.Fragment, ts time.Time) *Record {
	return &Record{
		Header: recordHeader{
			Unix:          ts.Unix(),
			StartLine:     int32(fragment.Starting.Line),
			StartPos:      int32(fragment.Starting.Pos),
			StartIndex:    int32(fragment.Starting.Index),
			EndLine:       int32(fragment.Ending.Line),
			EndPos:        int32(fragment.Ending.Pos),
			EndIndex:      int32(fragment.Ending.Index),
			ScanIDLength:  uint32(len(scanID)),
			PatternLength: uint32(len(pattern)),
		},
		ScanID:  []byte(scanID),
		Pattern: []byte(pattern),
	}
}

// Seq возвращает порядковый номер записи, присвоенный журналом.
func (r *Record) Seq() uint64 {
	return r.Header.Seq
}

// Time возвращает время фиксации совпадения.
func (r *Record) Time() time.Time {
	return time.Unix(r.Header.Unix, 0)
}

// ScanName возвращает идентификатор сканирования, породившего запись.
func (r *Record) ScanName() string {
	return string(r.ScanID)
}

// PatternName возвращает имя шаблона, который дал совпадение.
func (r *Record) PatternName() string {
	return string(r.Pattern)
}

// Fragment возвращает координаты совпадения.
func (r *Record) Fragment() automata.Fragment {
	return automata.Fragment{
		Starting: automata.Position{
			Line:  int(r.Header.StartLine),
			Pos:   int(r.Header.StartPos),
			Index: int(r.Header.StartIndex),
		},
		Ending: automata.Position{
			Line:  int(r.Header.EndLine),
			Pos:   int(r.Header.EndPos),
			Index: int(r.Header.EndIndex),
		},
	}
}

func (r *Record) readIn(reader io.Reader) error {
	if err := binary.Read(reader, binary.BigEndian, &r.Header); err != nil {
		return fmt.Errorf("can not read record header: %w", err)
	}
	r.ScanID = make([]byte, r.Header.ScanIDLength)
	if err := binary.Read(reader, binary.BigEndian, r.ScanID); err != nil {
		return fmt.Errorf("can not read record scan id: %w", err)
	}
	r.Pattern = make([]byte, r.Header.PatternLength)
	if err := binary.Read(reader, binary.BigEndian, r.Pattern); err != nil {
		return fmt.Errorf("can not read record pattern: %w", err)
	}
	return nil
}

func (r *Record) writeOut(writer io.Writer) error {
	if err := binary.Write(writer, binary.BigEndian, r.Header); err != nil {
		return fmt.Errorf("can not write record header: %w", err)
	}
	if err := binary.Write(writer, binary.BigEndian, r.ScanID); err != nil {
		return fmt.Errorf("can not write record scan id: %w", err)
	}
	if err := binary.Write(writer, binary.BigEndian, r.Pattern); err != nil {
		return fmt.Errorf("can not write record pattern: %w", err)
	}
	return nil
}
