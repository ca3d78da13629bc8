package journal

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
)

var (
	errBufferEmpty = errors.New("buffer is empty")
)

// diskBuffer очередь записей во внешней памяти с монотонно растущими
// ключами. Переживает перезапуск процесса: при открытии границы
// очереди восстанавливаются из самой базы.
type diskBuffer struct {
	lock sync.Mutex

	dataDir string
	db      *leveldb.DB

	front uint64
	tail  uint64
	size  int64
}

func newDiskBuffer(dataDir string) (*diskBuffer, error) {
	db, err := leveldb.OpenFile(dataDir, nil)
	if err != nil {
		return nil, fmt.Errorf("can not open underlying db: %w", err)
	}

	b := &diskBuffer{
		dataDir: dataDir,
		db:      db,
	}
	if err := b.recover(); err != nil {
		db.Close()
		return nil, fmt.Errorf("can not recover buffer bounds: %w", err)
	}
	return b, nil
}

// recover восстанавливает границы очереди по первой и последней записям базы.
func (b *diskBuffer) recover() error {
	iter := b.db.NewIterator(nil, nil)
	defer iter.Release()

	if iter.First() {
		b.front = binary.BigEndian.Uint64(iter.Key())
		iter.Last()
		b.tail = binary.BigEndian.Uint64(iter.Key()) + 1
		b.size = int64(b.tail - b.front)
	}
	return iter.Error()
}

// Append дописывает запись в хвост очереди, присваивая ей очередной ключ.
func (b *diskBuffer) Append(rec *Record) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	rec.Header.Seq = b.tail
	value := &bytes.Buffer{}
	if err := rec.writeOut(value); err != nil {
		return fmt.Errorf("can not encode record: %w", err)
	}

	if err := b.db.Put(uint64Key(b.tail), value.Bytes(), nil); err != nil {
		return fmt.Errorf("can not save record: %w", err)
	}

	b.tail++
	b.size++
	return nil
}

// LoadFirst читает запись из головы очереди, не удаляя ее.
func (b *diskBuffer) LoadFirst(rec *Record) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	if b.size == 0 {
		return errBufferEmpty
	}
	return b.load(b.front, rec)
}

// LoadRange читает limit записей, начиная с головы очереди.
// При limit <= 0 читает очередь целиком.
func (b *diskBuffer) LoadRange(limit int) ([]*Record, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	if limit <= 0 || int64(limit) > b.size {
		limit = int(b.size)
	}

	records := make([]*Record, 0, limit)
	for key := b.front; key < b.front+uint64(limit); key++ {
		rec := &Record{}
		if err := b.load(key, rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (b *diskBuffer) load(key uint64, rec *Record) error {
	value, err := b.db.Get(uint64Key(key), nil)
	if err != nil {
		return fmt.Errorf("can not read record: %w", err)
	}
	if err := rec.readIn(bytes.NewReader(value)); err != nil {
		return fmt.Errorf("can not decode record: %w", err)
	}
	return nil
}

// TrimFirst удаляет запись из головы очереди.
func (b *diskBuffer) TrimFirst() error {
	b.lock.Lock()
	defer b.lock.Unlock()

	if b.size == 0 {
		return errBufferEmpty
	}

	if err := b.db.Delete(uint64Key(b.front), nil); err != nil {
		return fmt.Errorf("can not trim record: %w", err)
	}

	b.front++
	b.size--
	return nil
}

func (b *diskBuffer) Size() int64 {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.size
}

// Close закрывает базу. Файлы остаются на диске для следующего запуска.
func (b *diskBuffer) Close() error {
	return b.db.Close()
}

func uint64Key(k uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, k)
	return key
}
