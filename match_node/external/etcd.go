package external

import (
	"context"
	"encoding/json"
	"path/filepath"

	"github.com/DataDog/zstd"
	"github.com/pkg/errors"

	"github.com/GDVFox/gomatch/match_node/pattern"
	"github.com/GDVFox/gomatch/util/storage"
)

const (
	patternsPath  = "/patterns"
	documentsPath = "/documents"

	// Тексты документов хорошо сжимаются, а ходят через etcd целиком,
	// поэтому храним их в zstd.
	documentsCompressLevel = zstd.BestSpeed
)

// ETCDClient клиент для работы с etcd.
type ETCDClient struct {
	cli *storage.ETCDClient
}

// NewETCDClient создает новый etcd клиент.
func NewETCDClient(cfg *storage.ETCDConfig) (*ETCDClient, error) {
	cli, err := storage.NewETCDClient(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "can not create etcd client")
	}
	return &ETCDClient{cli: cli}, nil
}

// LoadPatternNames получает список имен шаблонов, доступных в etcd.
func (c *ETCDClient) LoadPatternNames(ctx context.Context) ([]string, error) {
	names, err := c.cli.List(ctx, patternsPath)
	if err != nil {
		return nil, errors.Wrap(err, "can not list patterns from etcd")
	}
	return names, nil
}

// LoadPattern получает описание шаблона из etcd.
func (c *ETCDClient) LoadPattern(ctx context.Context, name string) (*pattern.Pattern, error) {
	resp, err := c.cli.Get(ctx, buildPatternKey(name))
	if err != nil {
		return nil, errors.Wrap(err, "can not load pattern from etcd")
	}

	p := &pattern.Pattern{}
	if err := json.Unmarshal(resp, p); err != nil {
		return nil, errors.Wrap(err, "can not unmarshal pattern")
	}
	return p, nil
}

// LoadAllPatterns получает описания всех шаблонов из etcd.
func (c *ETCDClient) LoadAllPatterns(ctx context.Context) ([]*pattern.Pattern, error) {
	names, err := c.LoadPatternNames(ctx)
	if err != nil {
		return nil, err
	}

	loaded := make([]*pattern.Pattern, 0, len(names))
	for _, name := range names {
		p, err := c.LoadPattern(ctx, name)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, p)
	}
	return loaded, nil
}

// RegisterPattern загружает описание нового шаблона в etcd.
func (c *ETCDClient) RegisterPattern(ctx context.Context, p *pattern.Pattern) error {
	patternData, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "can not marshal pattern")
	}

	if err := c.cli.Put(ctx, buildPatternKey(p.Name), string(patternData)); err != nil {
		return errors.Wrap(err, "can not register pattern in etcd")
	}
	return nil
}

// UpdatePattern перезаписывает описание существующего шаблона в etcd.
func (c *ETCDClient) UpdatePattern(ctx context.Context, p *pattern.Pattern) error {
	patternData, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "can not marshal pattern")
	}

	if err := c.cli.Update(ctx, buildPatternKey(p.Name), string(patternData)); err != nil {
		return errors.Wrap(err, "can not update pattern in etcd")
	}
	return nil
}

// DeletePattern удаляет описание шаблона из etcd.
func (c *ETCDClient) DeletePattern(ctx context.Context, name string) error {
	if err := c.cli.Delete(ctx, buildPatternKey(name)); err != nil {
		return errors.Wrap(err, "can not delete pattern from etcd")
	}
	return nil
}

// LoadDocumentNames получает список имен документов, доступных в etcd.
func (c *ETCDClient) LoadDocumentNames(ctx context.Context) ([]string, error) {
	names, err := c.cli.List(ctx, documentsPath)
	if err != nil {
		return nil, errors.Wrap(err, "can not list documents from etcd")
	}
	return names, nil
}

// LoadDocument получает текст документа из etcd.
func (c *ETCDClient) LoadDocument(ctx context.Context, name string) ([]byte, error) {
	resp, err := c.cli.Get(ctx, buildDocumentKey(name))
	if err != nil {
		return nil, errors.Wrap(err, "can not load document from etcd")
	}

	document, err := zstd.Decompress(nil, resp)
	if err != nil {
		return nil, errors.Wrap(err, "can not decompress document")
	}

	return document, nil
}

// RegisterDocument загружает новый документ в etcd.
func (c *ETCDClient) RegisterDocument(ctx context.Context, name string, document []byte) error {
	compressedDocument, err := zstd.CompressLevel(nil, document, documentsCompressLevel)
	if err != nil {
		return errors.Wrap(err, "can not compress document in zstd")
	}

	if err := c.cli.Put(ctx, buildDocumentKey(name), string(compressedDocument)); err != nil {
		return errors.Wrap(err, "can not register document in etcd")
	}
	return nil
}

// UpdateDocument перезаписывает существующий документ в etcd.
func (c *ETCDClient) UpdateDocument(ctx context.Context, name string, document []byte) error {
	compressedDocument, err := zstd.CompressLevel(nil, document, documentsCompressLevel)
	if err != nil {
		return errors.Wrap(err, "can not compress document in zstd")
	}

	if err := c.cli.Update(ctx, buildDocumentKey(name), string(compressedDocument)); err != nil {
		return errors.Wrap(err, "can not update document in etcd")
	}
	return nil
}

// DeleteDocument удаляет документ из etcd.
func (c *ETCDClient) DeleteDocument(ctx context.Context, name string) error {
	if err := c.cli.Delete(ctx, buildDocumentKey(name)); err != nil {
		return errors.Wrap(err, "can not delete document from etcd")
	}
	return nil
}

func buildPatternKey(patternName string) string {
	return filepath.Join(patternsPath, patternName)
}

func buildDocumentKey(documentName string) string {
	return filepath.Join(documentsPath, documentName)
}
