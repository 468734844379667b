package ports

//go:generate mockgen -source=broadcaster.go -destination=mocks/broadcaster_mock.go -package=mocks

import "strconv"

// Broadcaster publica eventos em tempo real para assinantes de um tópico
type Broadcaster interface {
	Publish(topic string, event string, payload any)
}

// GroupTopic é o tópico das mensagens de um grupo
func GroupTopic(groupID uint) string {
	return "group:" + strconv.FormatUint(uint64(groupID), 10)
}

// RecipientTopic é o canal pessoal de um destinatário ("user:7", "volunteer:3")
func RecipientTopic(kind string, id uint) string {
	return kind + ":" + strconv.FormatUint(uint64(id), 10)
}
