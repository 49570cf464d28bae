package storage

// RecordRow — строка листа с записями как есть, до нормализации.
type RecordRow struct {
	Line        int    `json:"line"`
	Employee    string `json:"employee"`
	Case        string `json:"case"`
	ServiceCode string `json:"service_code"`
	ServiceDate string `json:"service_date"`
	StartHour   string `json:"start_hour"`
	StartMinute string `json:"start_minute"`
	EndHour     string `json:"end_hour"`
	EndMinute   string `json:"end_minute"`
	Quantity    string `json:"quantity"`
}

type SubstitutionRow struct {
	Line        int    `json:"line"`
	Original    string `json:"original"`
	Substitute  string `json:"substitute"`
	Case        string `json:"case"`
	ServiceDate string `json:"service_date"`
}

// Table — готовый лист отчёта. nil в ячейке пишется как пустая клетка.
type Table struct {
	Sheet  string   `json:"sheet"`
	Header []string `json:"header"`
	Rows   [][]any  `json:"rows"`
}
