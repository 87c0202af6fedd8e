package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.telegram.org"

// BotNotifier sends the overdue delivery message to a fixed chat through the
// Telegram Bot API.
type BotNotifier struct {
	client  *http.Client
	baseURL string
	token   string
	chatID  string
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func NewBotNotifier(token, chatID string, timeout time.Duration) *BotNotifier {
	return &BotNotifier{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: defaultBaseURL,
		token:   token,
		chatID:  chatID,
	}
}

func (n *BotNotifier) NotifyExpired(ctx context.Context, orderID int64, deliveryDate time.Time) error {
	payload := sendMessageRequest{
		ChatID: n.chatID,
		Text:   fmt.Sprintf("Заказ №%d просрочен. Дата поставки: %s.", orderID, deliveryDate.Format("2006-01-02")),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	var result sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode telegram response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("telegram rejected message: %s", result.Description)
	}

	return nil
}
