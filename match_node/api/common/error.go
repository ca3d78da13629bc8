package common

// Возможные коды ошибок.
var (
	BadUnmarshalRequestErrorCode = "bad_unmarshal"
	BadPatternErrorCode          = "bad_pattern"
	BadDocumentErrorCode         = "bad_document"
	BadNameErrorCode             = "bad_name"
	BadTextErrorCode             = "bad_text"
	BadBorderErrorCode           = "bad_border"
	BadLimitErrorCode            = "bad_limit"
	BadStateErrorCode            = "bad_state"
	NameNotFoundErrorCode        = "name_not_found"
	NameAlreadyExistsErrorCode   = "name_already_exists"
	ETCDErrorCode                = "etcd_error"
	ScanErrorCode                = "scan_error"
	JournalErrorCode             = "journal_error"
	RenderGraphErrorCode         = "render_graph_error"
)
