package roomconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-TravelService/internal/domain"
)

// Parse разбирает компактную строку конфигурации комнат вида
// "roomsCount-adultsPerRoom[-childrenPerRoom]" в структурированные данные.
// Токены разделяются символами ',', ';' или '|'; пустые токены пропускаются.
//
// Порядок traveller entities детерминирован: для каждой комнаты сначала
// взрослые, затем дети, комнаты в порядке перечисления.
func Parse(spec string) (*domain.RoomConfig, error) {
	if spec == "" {
		return nil, ErrSpecRequired
	}

	tokens := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ';' || r == '|'
	})

	cfg := &domain.RoomConfig{}

	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		roomsCount, adultsPerRoom, childrenPerRoom, err := parseToken(token)
		if err != nil {
			return nil, err
		}

		for i := 0; i < roomsCount; i++ {
			cfg.Rooms = append(cfg.Rooms, domain.RoomEntry{
				Adults:   adultsPerRoom,
				Children: childrenPerRoom,
			})
			cfg.TotalAdults += adultsPerRoom
			for j := 0; j < adultsPerRoom; j++ {
				cfg.TravellerEntities = append(cfg.TravellerEntities,
					domain.TravellerEntity{Type: domain.TravellerAdult})
			}
			for j := 0; j < childrenPerRoom; j++ {
				cfg.TravellerEntities = append(cfg.TravellerEntities,
					domain.TravellerEntity{Type: domain.TravellerChild})
			}
		}
	}

	return cfg, nil
}

// parseToken разбирает один токен "rooms-adults[-children]"
func parseToken(token string) (roomsCount, adultsPerRoom, childrenPerRoom int, err error) {
	parts := strings.Split(token, "-")
	if len(parts) < 2 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}

	roomsCount, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}
	adultsPerRoom, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}
	if len(parts) > 2 {
		childrenPerRoom, err = strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidToken, token)
		}
	}

	// Неположительное количество комнат и отрицательные количества людей
	// отклоняются: дальше по конвейеру они дают отрицательные суммы
	if roomsCount < 1 || adultsPerRoom < 0 || childrenPerRoom < 0 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}

	return roomsCount, adultsPerRoom, childrenPerRoom, nil
}
