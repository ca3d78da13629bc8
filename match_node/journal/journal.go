package journal

import (
	"fmt"
	"time"

	"github.com/GDVFox/gomatch/lib/go-automata"
)

// Config набор параметров журнала совпадений.
type Config struct {
	Dir string `yaml:"dir"`
}

// NewConfig возвращает Config с настройками по умолчанию.
func NewConfig() *Config {
	return &Config{
		Dir: "./gomatch-journal",
	}
}

// Journal журнал совпадений: каждое найденное совпадение дописывается
// в хвост и хранится до тех пор, пока потребитель не подтвердит
// обработку вызовом Trim. Записывать могут несколько горутин,
// обрезать должен один потребитель.
type Journal struct {
	buffer *diskBuffer
}

// NewJournal открывает журнал в каталоге cfg.Dir, подхватывая
// записи, оставшиеся от предыдущего запуска.
func NewJournal(cfg *Config) (*Journal, error) {
	buff, err := newDiskBuffer(cfg.Dir)
	if err != nil {
		return nil, err
	}

	return &Journal{buffer: buff}, nil
}

// Append фиксирует совпадение fragment шаблона pattern в сканировании
// scanID. Возвращает порядковый номер новой записи.
func (j *Journal) Append(scanID, pattern string, fragment automata.Fragment) (uint64, error) {
	rec := newRecord(scanID, pattern, fragment, time.Now())
	if err := j.buffer.Append(rec); err != nil {
		return 0, fmt.Errorf("can not append journal record: %w", err)
	}
	return rec.Header.Seq, nil
}

// List возвращает не более limit записей, начиная с самой старой.
// При limit <= 0 возвращается весь журнал.
func (j *Journal) List(limit int) ([]*Record, error) {
	records, err := j.buffer.LoadRange(limit)
	if err != nil {
		return nil, fmt.Errorf("can not list journal records: %w", err)
	}
	return records, nil
}

// Trim удаляет из журнала все записи с номером не больше border и
// возвращает количество удаленных. Обрезать можно одновременно с
// записью: новые записи получают номера строго больше border, поэтому
// под нож они не попадут.
func (j *Journal) Trim(border uint64) (int, error) {
	trimmed := 0
	for j.buffer.Size() != 0 {
		rec := &Record{}
		if err := j.buffer.LoadFirst(rec); err != nil {
			return trimmed, fmt.Errorf("can not read front record: %w", err)
		}

		if rec.Header.Seq > border {
			break
		}

		if err := j.buffer.TrimFirst(); err != nil {
			return trimmed, fmt.Errorf("can not trim record: %w", err)
		}
		trimmed++
	}
	return trimmed, nil
}

// Size возвращает текущее количество записей в журнале.
func (j *Journal) Size() int64 {
	return j.buffer.Size()
}

// Close закрывает журнал. Данные остаются на диске.
func (j *Journal) Close() error {
	return j.buffer.Close()
}
