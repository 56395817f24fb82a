package clinicalrecords

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент хранилища клинических записей.
// При создании приёма в историю пациента добавляется сопроводительная запись;
// вызов выполняется внутри транзакции бронирования, чтобы неудачная запись
// откатила создание приёма.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента хранилища клинических записей
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// appendEntryRequest тело запроса на добавление записи
type appendEntryRequest struct {
	PatientID      int64  `json:"patient_id"`
	ProfessionalID int64  `json:"professional_id"`
	Note           string `json:"note"`
}

// AppendEntry добавляет запись в клиническую историю пациента
func (c *Client) AppendEntry(ctx context.Context, patientID, professionalID int64, note string) error {
	url := fmt.Sprintf("%s/internal/clinical-records/entries", c.baseURL)

	payload, err := json.Marshal(appendEntryRequest{
		PatientID:      patientID,
		ProfessionalID: professionalID,
		Note:           note,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
