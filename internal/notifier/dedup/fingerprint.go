package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Fingerprint выводит семантический идентификатор логического сообщения.
// Два разных легитимных сообщения одному пользователю никогда не совпадают,
// а повторы одного и того же логического сообщения совпадают всегда:
// scope — это логический день для чек-инов и ID сессии для сессионных
// сообщений.
func Fingerprint(kind, userID, scope string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s", kind, userID, scope)))
	return hex.EncodeToString(sum[:])
}
