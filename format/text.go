package format

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/CoreumFoundation/explorer-kit/types"
)

const (
	abbrSuffix = "..."
	msgInfix   = "Msg"
)

// Abbr returns the first length chars of the s followed by "...". Short strings are returned as is.
func Abbr(s string, length int) string {
	runes := []rune(s)
	if len(runes) > length {
		return string(runes[:length]) + abbrSuffix
	}

	return s
}

// AbbrRight returns the last length chars of the s followed by "...". Short strings are returned as is.
func AbbrRight(s string, length int) string {
	runes := []rune(s)
	if len(runes) > length {
		return string(runes[len(runes)-length:]) + abbrSuffix
	}

	return s
}

// AbbrAddress returns the address head and tail of the length joined with "...".
func AbbrAddress(address string, length int) (string, error) {
	if len(address) < length {
		return "", errors.Errorf("address is shorter than %d, address:%s", length, address)
	}

	return address[:length] + abbrSuffix + address[len(address)-length:], nil
}

// AbbrMessage returns the short message name, e.g. "Send" for "/cosmos.bank.v1beta1.MsgSend".
func AbbrMessage(msg types.Message) string {
	var name string
	if msg.TypeURL != "" {
		name = msg.TypeURL[strings.LastIndex(msg.TypeURL, ".")+1:]
	} else {
		name = msg.Type[strings.LastIndex(msg.Type, "/")+1:]
	}

	return strings.Replace(name, msgInfix, "", 1)
}

// AbbrMessages returns the short names of the messages joined with ", ".
func AbbrMessages(msgs []types.Message) string {
	return strings.Join(lo.Map(msgs, func(msg types.Message, _ int) string {
		return AbbrMessage(msg)
	}), ", ")
}

// IsStringArray reports whether the decoded JSON value is an array holding at least one string.
func IsStringArray(value any) bool {
	items, ok := value.([]any)
	if !ok {
		return false
	}

	return lo.ContainsBy(items, func(item any) bool {
		_, ok := item.(string)
		return ok
	})
}

// IsToken reports whether the decoded JSON value is an array holding at least one object with the denom.
func IsToken(value any) bool {
	items, ok := value.([]any)
	if !ok {
		return false
	}

	return lo.ContainsBy(items, func(item any) bool {
		object, ok := item.(map[string]any)
		if !ok {
			return false
		}
		_, ok = object["denom"]
		return ok
	})
}
