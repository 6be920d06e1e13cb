package service

import (
	"context"
	"fmt"
	"log"

	apperrors "github.com/yourusername/game-relay-api/internal/pkg/errors"
)

// defaultPersona используется, когда клиент не передал личность PNJ
const defaultPersona = "amable"

// promptTemplate — фиксированный шаблон промпта. Текст игрока подставляется
// дословно, без экранирования: prompt injection — известный унаследованный
// риск, решение по нему продуктовое, не техническое.
const promptTemplate = `Eres un PNJ en un videojuego. Tu personalidad es: "%s". Un jugador te dice: "%s". Responde brevemente y en personaje pero en ingles.`

// TextGenerator абстрагирует внешний сервис генерации текста
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// DialogueService превращает реплику игрока в ответ PNJ
type DialogueService struct {
	generator TextGenerator
}

// NewDialogueService создает новый сервис диалогов
func NewDialogueService(generator TextGenerator) (*DialogueService, error) {
	if generator == nil {
		return nil, fmt.Errorf("TextGenerator is required for DialogueService")
	}
	return &DialogueService{generator: generator}, nil
}

// BuildPrompt собирает промпт из реплики игрока и личности PNJ
func BuildPrompt(playerMessage, persona string) string {
	if persona == "" {
		persona = defaultPersona
	}
	return fmt.Sprintf(promptTemplate, persona, playerMessage)
}

// Chat отправляет реплику игрока модели и возвращает ответ PNJ без изменений.
// Любая ошибка генерации схлопывается в ErrUnavailable: клиенту не уходит
// ни текст ошибки, ни её причина.
func (s *DialogueService) Chat(ctx context.Context, playerMessage, persona string) (string, error) {
	prompt := BuildPrompt(playerMessage, persona)

	text, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		log.Printf("[DialogueService] Ошибка генерации ответа PNJ: %v", err)
		return "", fmt.Errorf("%w: text generation failed", apperrors.ErrUnavailable)
	}

	return text, nil
}
