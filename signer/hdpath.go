package signer

import (
	"slices"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/samber/lo"

	"github.com/CoreumFoundation/explorer-kit/store"
)

const (
	// DefaultHDPath is the derivation path used for the accounts without the stored path.
	DefaultHDPath = "m/44'/118/0'/0/0"

	hardenedOffset uint32 = 0x80000000
)

// HDPath is the BIP-32 derivation path, the hardened indices have the top bit set.
type HDPath []uint32

// ParseHDPath parses the path like "m/44'/118'/0'/0/0". Both ' and h mark the hardened index.
func ParseHDPath(path string) (HDPath, error) {
	parts := strings.Split(strings.TrimSpace(path), "/")
	if parts[0] != "m" {
		return nil, errorsmod.Wrapf(ErrInvalidHDPath, "path must start with m, path:%s", path)
	}

	hdPath := make(HDPath, 0, len(parts)-1)
	for _, part := range parts[1:] {
		hardened := strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h")
		if hardened {
			part = part[:len(part)-1]
		}
		index, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, errorsmod.Wrapf(ErrInvalidHDPath, "invalid index %q, path:%s", part, path)
		}
		if uint32(index) >= hardenedOffset {
			return nil, errorsmod.Wrapf(ErrInvalidHDPath, "index %d is out of range, path:%s", index, path)
		}
		if hardened {
			index += uint64(hardenedOffset)
		}
		hdPath = append(hdPath, uint32(index))
	}

	return hdPath, nil
}

// String returns the path in the m/44'/... notation.
func (p HDPath) String() string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, index := range p {
		sb.WriteString("/")
		if index >= hardenedOffset {
			sb.WriteString(strconv.FormatUint(uint64(index-hardenedOffset), 10))
			sb.WriteString("'")
			continue
		}
		sb.WriteString(strconv.FormatUint(uint64(index), 10))
	}

	return sb.String()
}

// HDPathResolver resolves the derivation path of the address from the stored accounts.
type HDPathResolver struct {
	ls *store.LocalStore
}

// NewHDPathResolver returns new instance of the HDPathResolver.
func NewHDPathResolver(ls *store.LocalStore) *HDPathResolver {
	return &HDPathResolver{
		ls: ls,
	}
}

// Resolve returns the stored hdpath of the address or the DefaultHDPath.
// If several accounts hold the address, the path of the last account in the key order wins.
func (r *HDPathResolver) Resolve(address string) (HDPath, error) {
	accounts, err := r.ls.Accounts()
	if err != nil {
		return nil, err
	}

	path := DefaultHDPath
	keys := lo.Keys(accounts)
	slices.Sort(keys)
	for _, key := range keys {
		for _, accountAddress := range accounts[key].Address {
			if accountAddress.Addr == address && accountAddress.HDPath != "" {
				path = accountAddress.HDPath
				break
			}
		}
	}

	return ParseHDPath(path)
}
