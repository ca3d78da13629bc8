package registry

import (
	"sort"
	"sync"

	"github.com/mohae/deepcopy"
	"github.com/pkg/errors"

	"github.com/GDVFox/gomatch/match_node/pattern"
	"github.com/GDVFox/gomatch/util"
)

// Возможные ошибки.
var (
	ErrUnknownPattern = errors.New("unknown pattern")
)

// PatternRegistry хранит in-memory зеркало шаблонов, загруженных в etcd.
// Источником истины остается etcd: обработчики API сначала меняют
// хранилище и только после успеха отражают изменение здесь, поэтому
// сканированиям не приходится ходить в etcd за каждым шаблоном.
type PatternRegistry struct {
	mutex          sync.RWMutex
	patternsByName map[string]*pattern.Pattern

	logger *util.Logger
}

// NewPatternRegistry создает реестр с начальным набором шаблонов.
func NewPatternRegistry(initial []*pattern.Pattern, l *util.Logger) *PatternRegistry {
	byName := make(map[string]*pattern.Pattern, len(initial))
	for _, p := range initial {
		byName[p.Name] = p
	}

	return &PatternRegistry{
		patternsByName: byName,
		logger:         l.WithName("registry"),
	}
}

// Set добавляет шаблон в реестр или заменяет имеющийся.
func (r *PatternRegistry) Set(p *pattern.Pattern) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.patternsByName[p.Name] = deepcopy.Copy(p).(*pattern.Pattern)
	r.logger.Debugf("pattern %s set", p.Name)
}

// Delete удаляет шаблон из реестра.
func (r *PatternRegistry) Delete(name string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.patternsByName, name)
	r.logger.Debugf("pattern %s deleted", name)
}

// Get возвращает копию шаблона по имени.
func (r *PatternRegistry) Get(name string) (*pattern.Pattern, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	p, ok := r.patternsByName[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "'%s'", name)
	}
	return deepcopy.Copy(p).(*pattern.Pattern), nil
}

// Names возвращает отсортированный список имен шаблонов.
func (r *PatternRegistry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.patternsByName))
	for name := range r.patternsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size возвращает количество шаблонов в реестре.
func (r *PatternRegistry) Size() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.patternsByName)
}

// Resolve возвращает копии шаблонов с именами names.
// Пустой список имен означает все шаблоны реестра.
func (r *PatternRegistry) Resolve(names []string) ([]*pattern.Pattern, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if len(names) == 0 {
		names = make([]string, 0, len(r.patternsByName))
		for name := range r.patternsByName {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	resolved := make([]*pattern.Pattern, 0, len(names))
	for _, name := range names {
		p, ok := r.patternsByName[name]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownPattern, "'%s'", name)
		}
		resolved = append(resolved, deepcopy.Copy(p).(*pattern.Pattern))
	}
	return resolved, nil
}
