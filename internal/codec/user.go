package codec

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/newsboard/internal/models"
)

const userMinFields = 8

// EncodeUser writes id, username, password, email, avatar, totalLikes,
// totalComments, registeredAt and role.
func EncodeUser(u models.User) string {
	return strings.Join([]string{
		Escape(u.ID),
		Escape(u.Username),
		Escape(u.Password),
		Escape(u.Email),
		Escape(u.Avatar),
		strconv.Itoa(u.TotalLikes),
		strconv.Itoa(u.TotalComments),
		formatMillis(u.RegisteredAt),
		string(u.Role),
	}, string(fieldSep))
}

// DecodeUser parses a user line. Old rows carried a followed-tags column at
// index 7 and the registration date at index 8; those are recognised by a
// numeric ninth field.
func DecodeUser(line string) (models.User, bool) {
	parts := Split(line, fieldSep)
	if len(parts) < userMinFields {
		return models.User{}, false
	}

	u := models.User{
		ID:            Unescape(parts[0]),
		Username:      Unescape(parts[1]),
		Password:      Unescape(parts[2]),
		Email:         Unescape(parts[3]),
		Avatar:        Unescape(parts[4]),
		TotalLikes:    intOrZero(parts[5]),
		TotalComments: intOrZero(parts[6]),
	}
	if u.ID == "" {
		return models.User{}, false
	}

	role := ""
	if len(parts) > 8 {
		if t, ok := parseMillis(parts[8]); ok {
			u.RegisteredAt = t
		} else {
			role = Unescape(parts[8])
		}
	}
	if u.RegisteredAt.IsZero() {
		u.RegisteredAt = millisOrNow(parts[7])
	}
	u.Role = decodeRole(role, u.Username)

	return u, true
}

func decodeRole(s, username string) models.Role {
	switch r := models.Role(strings.TrimSpace(s)); r {
	case models.RoleAdmin, models.RoleUser:
		return r
	}
	if username == models.AdminUsername {
		return models.RoleAdmin
	}
	return models.RoleUser
}
