package model

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	referencePrefix      = "ETH"
	referenceRandomChars = 4
	base36Alphabet       = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewReference builds a customer-facing booking reference of the form
// ETH-<timestamp>-<salt>, where the timestamp is the current UnixNano
// encoded in base36 and the salt is 4 random base36 characters.
func NewReference() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixNano(), 36))

	var salt strings.Builder
	for i := 0; i < referenceRandomChars; i++ {
		salt.WriteByte(base36Alphabet[rand.IntN(len(base36Alphabet))])
	}

	return referencePrefix + "-" + ts + "-" + salt.String()
}
