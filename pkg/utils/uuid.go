package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera ids curtos para registros internos (ex.: sync_logs)
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

// NewEventID gera o id dos eventos do barramento
func NewEventID() string {
	id, err := gonanoid.New()
	if err != nil {
		// gonanoid só falha se o gerador de aleatórios do sistema falhar
		return ""
	}
	return id
}
