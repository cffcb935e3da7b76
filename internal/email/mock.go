package email

// MockProvider записывает отправленные письма, для тестов
type MockProvider struct {
	Sent []SentMessage
}

type SentMessage struct {
	To      string
	Subject string
	Body    string
}

func (m *MockProvider) Send(to, subject, body string) error {
	m.Sent = append(m.Sent, SentMessage{To: to, Subject: subject, Body: body})
	return nil
}
