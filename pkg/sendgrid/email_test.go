package sendgrid_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/homebase-labs/seller-marketplace/internal/models"
	sendgrid_client "github.com/homebase-labs/seller-marketplace/pkg/sendgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotifier(t *testing.T) {
	// Arrange
	apiKey := "test-api-key"
	fromEmail := "sender@example.com"
	fromName := "Test Sender"
	alertEmail := "owner@example.com"

	// Act
	notifier := sendgrid_client.NewNotifier(apiKey, fromEmail, fromName, alertEmail)

	// Assert
	assert.NotNil(t, notifier)
	assert.NotNil(t, notifier.GetSendGridClient())
}

type sendgridV3Payload struct {
	Personalizations []struct {
		To      []map[string]string `json:"to"`
		Subject string              `json:"subject"`
	} `json:"personalizations"`
	From    map[string]string `json:"from"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

func TestNotifyLowStock(t *testing.T) {
	apiKey := "SG.test-api-key"
	fromEmail := "from@example.com"
	fromName := "Test Sender"
	alertEmail := "owner@example.com"
	ctx := t.Context()

	var mockServer *httptest.Server

	var lastRequestPayload sendgridV3Payload

	var handlerFunc http.HandlerFunc

	// startMockServer sets up and starts the httptest server with the current handlerFunc.
	startMockServer := func() {
		mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bodyBytes, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, "Failed to read request body", http.StatusInternalServerError)

				return
			}

			defer r.Body.Close()

			err = json.Unmarshal(bodyBytes, &lastRequestPayload)
			if err != nil {
				http.Error(w, "Failed to unmarshal request body", http.StatusBadRequest)

				return
			}

			handlerFunc(w, r)
		}))
	}

	listingID := uuid.New()

	tests := []struct {
		name          string
		alerts        []models.LowStockAlert
		handler       http.HandlerFunc                              // Mock server handler for this specific test
		expectedError string                                        // Substring expected in the error message, empty for no error
		checkPayload  func(t *testing.T, payload sendgridV3Payload) // Optional payload validation
	}{
		{
			name: "Success - Single Alert",
			alerts: []models.LowStockAlert{
				{ListingID: listingID, SellerID: "seller-1", ProductName: "Amul Butter", Stock: 3},
			},
			handler: func(w http.ResponseWriter, r *http.Request) {
				// Assert
				assert.Equal(t, http.MethodPost, r.Method, "Expected POST request")
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.Equal(t, "Bearer "+apiKey, r.Header.Get("Authorization"))
				w.WriteHeader(http.StatusAccepted) // 202 Accepted is typical for SendGrid v3 mail/send
			},
			expectedError: "",
			checkPayload: func(t *testing.T, p sendgridV3Payload) {
				require.Len(t, p.Personalizations, 1, "Expected one personalization block")
				pers := p.Personalizations[0]
				require.Len(t, pers.To, 1, "Expected one TO recipient")
				assert.Equal(t, alertEmail, pers.To[0]["email"])
				assert.Equal(t, "Low stock: 1 listing(s) below threshold", pers.Subject)

				assert.Equal(t, fromEmail, p.From["email"])
				assert.Equal(t, fromName, p.From["name"])

				require.Len(t, p.Content, 1, "Expected one plain-text content block")
				assert.Equal(t, "text/plain", p.Content[0].Type)
				assert.Contains(t, p.Content[0].Value, "Amul Butter")
				assert.Contains(t, p.Content[0].Value, listingID.String())
				assert.Contains(t, p.Content[0].Value, "3 left")
			},
		},
		{
			name: "Success - Multiple Alerts In One Mail",
			alerts: []models.LowStockAlert{
				{ListingID: uuid.New(), SellerID: "seller-1", ProductName: "Butter", Stock: 2},
				{ListingID: uuid.New(), SellerID: "seller-2", ProductName: "Cheese", Stock: 4},
			},
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusAccepted)
			},
			expectedError: "",
			checkPayload: func(t *testing.T, p sendgridV3Payload) {
				require.Len(t, p.Personalizations, 1)
				assert.Equal(t, "Low stock: 2 listing(s) below threshold", p.Personalizations[0].Subject)

				require.Len(t, p.Content, 1)
				assert.Contains(t, p.Content[0].Value, "Butter")
				assert.Contains(t, p.Content[0].Value, "Cheese")
			},
		},
		{
			name: "Failure - SendGrid API Error (4xx)",
			alerts: []models.LowStockAlert{
				{ListingID: uuid.New(), SellerID: "seller-1", ProductName: "Butter", Stock: 1},
			},
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest) // 400 Bad Request
				_, _ = w.Write([]byte(`{"errors": [{"message": "Invalid email"}]}`))
			},
			expectedError: "failed to send email, status code: 400",
		},
		{
			name: "Failure - SendGrid API Error (5xx)",
			alerts: []models.LowStockAlert{
				{ListingID: uuid.New(), SellerID: "seller-1", ProductName: "Butter", Stock: 1},
			},
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError) // 500 Internal Server Error
			},
			expectedError: "failed to send email, status code: 500",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lastRequestPayload = sendgridV3Payload{} // Reset payload capture
			handlerFunc = tc.handler                 // Set the handler for this test

			startMockServer() // Start the server for this test case

			notifier := sendgrid_client.NewNotifier(apiKey, fromEmail, fromName, alertEmail)

			sgClient := notifier.GetSendGridClient()

			sgClient.Request.BaseURL = mockServer.URL

			// Act
			err := notifier.NotifyLowStock(ctx, tc.alerts)

			// Assert
			if tc.expectedError == "" {
				assert.NoError(t, err, "Expected no error")
			} else {
				assert.Error(t, err, "Expected an error")
				assert.Contains(t, err.Error(), tc.expectedError, "Error message mismatch")
			}

			if tc.checkPayload != nil {
				tc.checkPayload(t, lastRequestPayload)
			}

			mockServer.Close()
		})
	}

	t.Run("Empty batch sends nothing", func(t *testing.T) {
		// Arrange
		var requestCount int

		handlerFunc = func(w http.ResponseWriter, r *http.Request) {
			requestCount++
			w.WriteHeader(http.StatusAccepted)
		}

		startMockServer()
		defer mockServer.Close()

		notifier := sendgrid_client.NewNotifier(apiKey, fromEmail, fromName, alertEmail)
		notifier.GetSendGridClient().Request.BaseURL = mockServer.URL

		// Act
		err := notifier.NotifyLowStock(ctx, nil)

		// Assert
		assert.NoError(t, err)
		assert.Zero(t, requestCount, "Expected no outbound request for an empty batch")
	})

	t.Run("Failure - Network Error", func(t *testing.T) {
		// Arrange
		startMockServer()

		notifier := sendgrid_client.NewNotifier(apiKey, fromEmail, fromName, alertEmail)
		notifier.GetSendGridClient().Request.BaseURL = mockServer.URL
		mockServer.Close()

		alerts := []models.LowStockAlert{
			{ListingID: uuid.New(), SellerID: "seller-1", ProductName: "Butter", Stock: 1},
		}

		// Act
		err := notifier.NotifyLowStock(ctx, alerts)

		// Assert
		assert.Error(t, err, "Expected a network error")
		assert.True(t, strings.Contains(err.Error(), "connect: connection refused") || strings.Contains(err.Error(), "dial tcp"), "Expected connection refused or dial tcp error")
	})
}
