package matchclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/GDVFox/gomatch/match_node/api/documents"
	"github.com/GDVFox/gomatch/match_node/api/matches"
	"github.com/GDVFox/gomatch/match_node/api/patterns"
	"github.com/GDVFox/gomatch/match_node/api/ping"
	"github.com/GDVFox/gomatch/match_node/api/scans"
	"github.com/GDVFox/gomatch/match_node/engine"
	"github.com/GDVFox/gomatch/match_node/pattern"
	"github.com/GDVFox/gomatch/util/httplib"
)

var (
	matchScheme        = "http"
	watchScheme        = "ws"
	pingPath           = "/v1/ping"
	patternsListPath   = "/v1/patterns"
	getPatternPath     = "/v1/patterns/"
	createPatternPath  = "/v1/patterns"
	updatePatternPath  = "/v1/patterns/"
	deletePatternPath  = "/v1/patterns/"
	patternDiagramPath = "/v1/patterns/%s/diagram"
	documentsListPath  = "/v1/documents"
	getDocumentPath    = "/v1/documents/"
	createDocumentPath = "/v1/documents"
	updateDocumentPath = "/v1/documents/"
	deleteDocumentPath = "/v1/documents/"
	runScanPath        = "/v1/scans"
	watchScanPath      = "/v1/scans/watch"
	matchesListPath    = "/v1/matches"
	ackMatchesPath     = "/v1/matches"
)

var (
	// MatchNode клиент для доступа.
	MatchNode *MatchNodeClient
	// MatchNodeAddress адрес MatchNode.
	MatchNodeAddress string
)

// MatchNodeClientConfig набор настроек для MatchNodeClient.
type MatchNodeClientConfig struct {
	Address string
}

// MatchNodeClient клиент для подключения к match_node
type MatchNodeClient struct {
	client *http.Client
	cfg    *MatchNodeClientConfig
}

// OpenMatchNodeClient открывает match_node client.
func OpenMatchNodeClient(cfg *MatchNodeClientConfig) {
	MatchNode = NewMatchNodeClient(cfg)
	MatchNodeAddress = cfg.Address
}

// NewMatchNodeClient возвращает новый MatchNodeClient
func NewMatchNodeClient(cfg *MatchNodeClientConfig) *MatchNodeClient {
	return &MatchNodeClient{
		client: &http.Client{Timeout: 1 * time.Minute},
		cfg:    cfg,
	}
}

// Ping возвращает краткое состояние узла.
func (c *MatchNodeClient) Ping() (*ping.NodeState, error) {
	matchURL := url.URL{
		Scheme: matchScheme,
		Host:   c.cfg.Address,
		Path:   pingPath,
	}

	state := &ping.NodeState{}
	if err := c.get(matchURL.String(), state); err != nil {
		return nil, err
	}
	return state, nil
}

// GetPatternsList возвращает список шаблонов.
func (c *MatchNodeClient) GetPatternsList() (*patterns.PatternList, error) {
	matchURL := url.URL{
		Scheme: matchScheme,
		Host:   c.cfg.Address,
		Path:   patternsListPath,
	}

	patternList := &patterns.PatternList{}
	if err := c.get(matchURL.String(), patternList); err != nil {
		return nil, err
	}
	return patternList, nil
}

// GetPattern возвращает описание шаблона.
func (c *MatchNodeClient) GetPattern(patternName string) (*pattern.Pattern, error) {
	matchURL := url.URL{
		Scheme: matchScheme,
		Host:   c.cfg.Address,
		Path:   getPatternPath + patternName,
	}

	p := &pattern.Pattern{}
	if err := c.get(matchURL.String(), p); err != nil {
		return nil, err
	}
	return p, nil
}

// CreatePattern создает новый шаблон.
func (c *MatchNodeClient) CreatePattern(p *pattern.Pattern) error {
	matchURL := url.URL{
		Scheme: matchScheme,
		Host:   c.cfg.Address,
		Path:   createPatternPath,
	}

	return c.post(matchURL.String(), p)
}

// UpdatePattern заменяет описание существующего шаблона.
func (c *MatchNodeClient) UpdatePattern(p *pattern.Pattern) error {
	matchURL := url.URL{
		Scheme: matchScheme,
		Host:   c.cfg.Address,
		Path:   updatePatternPath + p.Name,
	}

	return c.put(matchURL.String(), p)
}

// DeletePattern удаление заданного шаблона.
func (c *MatchNodeClient) DeletePattern(patternName string) error {
	matchURL := url.URL{
		Scheme: matchScheme,
		Host:   c.cfg.Address,
		Path:   deletePatternPath + patternName,
	}

	return c.delete(matchURL.String())
}

// GetPatternDiagram возвращает SVG диаграмму автомата шаблона.
func (c *MatchNodeClient) GetPatternDiagram(patternName string) ([]byte, error) {
	matchURL := url.URL{
		Scheme: matchScheme,
		Host:   c.cfg.Address,
		Path:   fmt.Sprintf(patternDiagramPath, patternName),
	}

	return c.getBinary(matchURL.String())
}

// GetDocumentsList возвращает список загруженных документов.
func (c *MatchNodeClient) GetDocumentsList() (*documents.DocumentList, error) {
	matchURL := url.URL{
		Scheme: matchScheme,
		Host:   c.cfg.Address,
		Path:   documentsListPath,
	}

	documentList := &documents.DocumentList{}
	if err := c.get(matchURL.String(), documentList); err != nil {
		return nil, err
	}
	return documentList, nil
}

// GetDocument возвращает текст документа.
func (c *MatchNodeClient) GetDocument(documentName string) ([]byte, error) {
	matchURL := url.URL{
		Scheme: matchScheme,
		Host:   c.cfg.Address,
		Path:   getDocumentPath + documentName,
	}

	return c.getBinary(matchURL.String())
}

// CreateDocument загружает новый документ.
func (c *MatchNodeClient) CreateDocument(documentName string, document []byte) error {
	matchURL := url.URL{
		Scheme: matchScheme,
		Host:   c.cfg.Address,
		Path:   createDocumentPath,
	}

	return c.sendDocument(http.MethodPost, matchURL.String(), documentName, document)
}

// UpdateDocument заменяет существующий документ.
func (c *MatchNodeClient) UpdateDocument(documentName string, document []byte) error {
	matchURL := url.URL{
		Scheme: matchScheme,
		Host:   c.cfg.Address,
		Path:   updateDocumentPath + documentName,
	}

	return c.sendDocument(http.MethodPut, matchURL.String(), documentName, document)
}

// DeleteDocument удаление заданного документа.
func (c *MatchNodeClient) DeleteDocument(documentName string) error {
	matchURL := url.URL{
		Scheme: matchScheme,
		Host:   c.cfg.Address,
		Path:   deleteDocumentPath + documentName,
	}

	return c.delete(matchURL.String())
}

// RunScan запускает сканирование и возвращает отчет.
func (c *MatchNodeClient) RunScan(req *scans.ScanRequest) (*engine.Report, error) {
	matchURL := url.URL{
		Scheme: matchScheme,
		Host:   c.cfg.Address,
		Path:   runScanPath,
	}

	report := &engine.Report{}
	if err := c.postData(matchURL.String(), req, report); err != nil {
		return nil, err
	}
	return report, nil
}

// DialWatch открывает websocket для потокового сканирования.
func (c *MatchNodeClient) DialWatch(patternNames []string) (*websocket.Conn, error) {
	matchURL := url.URL{
		Scheme: watchScheme,
		Host:   c.cfg.Address,
		Path:   watchScanPath,
	}
	if len(patternNames) != 0 {
		matchURL.RawQuery = "patterns=" + strings.Join(patternNames, ",")
	}

	conn, resp, err := websocket.DefaultDialer.Dial(matchURL.String(), nil)
	if err != nil {
		if resp != nil && resp.Body != nil {
			return nil, c.handleError(resp.Body)
		}
		return nil, err
	}
	return conn, nil
}

// GetMatchesList возвращает накопленные в журнале совпадения.
func (c *MatchNodeClient) GetMatchesList(limit int) (*matches.MatchList, error) {
	matchURL := url.URL{
		Scheme: matchScheme,
		Host:   c.cfg.Address,
		Path:   matchesListPath,
	}
	if limit > 0 {
		matchURL.RawQuery = "limit=" + strconv.Itoa(limit)
	}

	matchList := &matches.MatchList{}
	if err := c.get(matchURL.String(), matchList); err != nil {
		return nil, err
	}
	return matchList, nil
}

// AckMatches подтверждает получение совпадений с номерами не больше border.
func (c *MatchNodeClient) AckMatches(border uint64) (*matches.AckResult, error) {
	matchURL := url.URL{
		Scheme:   matchScheme,
		Host:     c.cfg.Address,
		Path:     ackMatchesPath,
		RawQuery: "border=" + strconv.FormatUint(border, 10),
	}

	result := &matches.AckResult{}
	if err := c.deleteData(matchURL.String(), result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *MatchNodeClient) sendDocument(method string, url string, documentName string, document []byte) error {
	var buff bytes.Buffer
	w := multipart.NewWriter(&buff)

	if err := w.WriteField("name", documentName); err != nil {
		return err
	}
	fw, err := w.CreateFormFile("document", documentName)
	if err != nil {
		return err
	}
	if _, err := fw.Write(document); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequest(method, url, &buff)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusNoContent {
		return c.handleError(resp.Body)
	}
	return nil
}

func (c *MatchNodeClient) get(url string, respData interface{}) error {
	resp, err := c.client.Get(url)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return c.handleError(resp.Body)
	}
	return json.NewDecoder(resp.Body).Decode(respData)
}

func (c *MatchNodeClient) getBinary(url string) ([]byte, error) {
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleError(resp.Body)
	}
	return io.ReadAll(resp.Body)
}

func (c *MatchNodeClient) post(url string, body interface{}) error {
	reqBodyEncoded, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return c.doNoContent(http.MethodPost, url, reqBodyEncoded)
}

func (c *MatchNodeClient) postData(url string, body interface{}, respData interface{}) error {
	reqBodyEncoded, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(reqBodyEncoded))
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return c.handleError(resp.Body)
	}
	return json.NewDecoder(resp.Body).Decode(respData)
}

func (c *MatchNodeClient) put(url string, body interface{}) error {
	reqBodyEncoded, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return c.doNoContent(http.MethodPut, url, reqBodyEncoded)
}

func (c *MatchNodeClient) delete(url string) error {
	return c.doNoContent(http.MethodDelete, url, nil)
}

func (c *MatchNodeClient) deleteData(url string, respData interface{}) error {
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return c.handleError(resp.Body)
	}
	return json.NewDecoder(resp.Body).Decode(respData)
}

func (c *MatchNodeClient) doNoContent(method string, url string, body []byte) error {
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusNoContent {
		return c.handleError(resp.Body)
	}
	return nil
}

func (c *MatchNodeClient) handleError(r io.Reader) error {
	matchError := &httplib.ErrorBody{}
	if err := json.NewDecoder(r).Decode(matchError); err != nil {
		return fmt.Errorf("can not decode error response: %w", err)
	}
	return fmt.Errorf("%s", matchError.Message)
}
