package identity

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/osse101/PitchBot_Go/internal/domain"
)

// ParseQueryID decodes the Telegram init data carried by a query id and
// returns the embedded user.
func ParseQueryID(queryID string) (*domain.TelegramUser, error) {
	queryID = strings.TrimSpace(queryID)
	if queryID == "" {
		return nil, fmt.Errorf("%w: empty", domain.ErrInvalidQueryID)
	}

	values, err := url.ParseQuery(queryID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidQueryID, err)
	}

	raw := values.Get(ParamUser)
	if raw == "" {
		return nil, fmt.Errorf("%w: missing %q parameter", domain.ErrInvalidQueryID, ParamUser)
	}

	var user domain.TelegramUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("%w: decode user: %v", domain.ErrInvalidQueryID, err)
	}
	if user.ID == 0 {
		return nil, fmt.Errorf("%w: user id is missing", domain.ErrInvalidQueryID)
	}

	return &user, nil
}

// New builds an Identity from a query id. name and proxy are optional.
func New(queryID, name, proxy string) (domain.Identity, error) {
	queryID = strings.TrimSpace(queryID)
	user, err := ParseQueryID(queryID)
	if err != nil {
		return domain.Identity{}, err
	}

	if name == "" {
		name = user.Username
	}
	if name == "" {
		name = strconv.FormatInt(user.ID, 10)
	}

	return domain.Identity{
		Name:       name,
		QueryID:    queryID,
		TelegramID: user.ID,
		Username:   user.Username,
		Proxy:      strings.TrimSpace(proxy),
	}, nil
}
