package engine

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/GDVFox/gomatch/lib/go-automata"
	"github.com/GDVFox/gomatch/match_node/journal"
	"github.com/GDVFox/gomatch/match_node/pattern"
	"github.com/GDVFox/gomatch/util"
)

// Config набор параметров выполнения сканирований.
type Config struct {
	ScanTimeout util.Duration `yaml:"scan-timeout"`
	MaxTextSize int           `yaml:"max-text-size"`
}

// NewConfig возвращает Config с настройками по умолчанию.
func NewConfig() *Config {
	return &Config{
		ScanTimeout: util.Duration(30 * time.Second),
		MaxTextSize: 4 * 1024 * 1024, // 4MB
	}
}

// Match совпадение одного шаблона в тексте.
type Match struct {
	Pattern  string            `json:"pattern"`
	Seq      uint64            `json:"seq"`
	Fragment automata.Fragment `json:"fragment"`
}

// Report результат сканирования текста.
type Report struct {
	ScanID   string          `json:"scan_id"`
	Accepted map[string]bool `json:"accepted"`
	Matches  []*Match        `json:"matches"`
}

// MatchEngine прогоняет тексты через автоматы шаблонов и фиксирует
// найденные совпадения в журнале.
type MatchEngine struct {
	journal *journal.Journal

	logger *util.Logger
	cfg    *Config
}

func newMatchEngine(l *util.Logger, cfg *Config, journalCfg *journal.Config) (*MatchEngine, error) {
	j, err := journal.NewJournal(journalCfg)
	if err != nil {
		return nil, errors.Wrap(err, "can not open journal")
	}

	return &MatchEngine{
		journal: j,
		logger:  l.WithName("engine"),
		cfg:     cfg,
	}, nil
}

// RunScan сканирует text каждым шаблоном из pats параллельно.
// В отчете для каждого шаблона есть вердикт, принимает ли его автомат
// текст целиком, и список всех найденных фрагментов. Каждый фрагмент
// до попадания в отчет фиксируется в журнале.
func (e *MatchEngine) RunScan(ctx context.Context, scanID, text string, pats []*pattern.Pattern) (*Report, error) {
	runCtx, runCancel := context.WithTimeout(ctx, time.Duration(e.cfg.ScanTimeout))
	defer runCancel()

	report := &Report{
		ScanID:   scanID,
		Accepted: make(map[string]bool, len(pats)),
		Matches:  make([]*Match, 0),
	}

	var reportMutex sync.Mutex
	wg, groupCtx := errgroup.WithContext(runCtx)
	for _, p := range pats {
		p := p
		wg.Go(func() error {
			accepted, matches, err := e.scanPattern(groupCtx, scanID, p, text)
			if err != nil {
				return errors.Wrapf(err, "pattern '%s'", p.Name)
			}

			reportMutex.Lock()
			defer reportMutex.Unlock()
			report.Accepted[p.Name] = accepted
			report.Matches = append(report.Matches, matches...)
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(report.Matches, func(i, j int) bool {
		if report.Matches[i].Pattern != report.Matches[j].Pattern {
			return report.Matches[i].Pattern < report.Matches[j].Pattern
		}
		return report.Matches[i].Fragment.Starting.Index < report.Matches[j].Fragment.Starting.Index
	})

	e.logger.Infof("scan %s done: %d patterns, %d matches", scanID, len(pats), len(report.Matches))
	return report, nil
}

func (e *MatchEngine) scanPattern(ctx context.Context, scanID string, p *pattern.Pattern, text string) (bool, []*Match, error) {
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}

	a, err := p.Automaton()
	if err != nil {
		return false, nil, err
	}

	accepted := a.Run(text)
	fragments := automata.NewScanner(a).Scan(text)

	matches := make([]*Match, 0, len(fragments))
	for _, fragment := range fragments {
		seq, err := e.journal.Append(scanID, p.Name, fragment)
		if err != nil {
			return false, nil, err
		}
		matches = append(matches, &Match{Pattern: p.Name, Seq: seq, Fragment: fragment})
	}
	return accepted, matches, nil
}

// Record фиксирует в журнале совпадение, найденное вне RunScan,
// например потоковым сканированием. Возвращает номер новой записи.
func (e *MatchEngine) Record(scanID, pattern string, fragment automata.Fragment) (uint64, error) {
	return e.journal.Append(scanID, pattern, fragment)
}

// Matches возвращает не более limit неподтвержденных совпадений,
// начиная с самого старого. При limit <= 0 возвращаются все.
func (e *MatchEngine) Matches(limit int) ([]*journal.Record, error) {
	return e.journal.List(limit)
}

// Ack подтверждает обработку всех совпадений с номером не больше
// border и удаляет их из журнала.
func (e *MatchEngine) Ack(border uint64) (int, error) {
	trimmed, err := e.journal.Trim(border)
	if err != nil {
		return trimmed, err
	}
	e.logger.Infof("acked %d matches up to %d", trimmed, border)
	return trimmed, nil
}

// JournalSize возвращает количество неподтвержденных совпадений.
func (e *MatchEngine) JournalSize() int64 {
	return e.journal.Size()
}

// MaxTextSize возвращает максимальный размер текста для сканирования.
func (e *MatchEngine) MaxTextSize() int {
	return e.cfg.MaxTextSize
}

// Close закрывает журнал движка.
func (e *MatchEngine) Close() error {
	return e.journal.Close()
}
