package address_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CoreumFoundation/explorer-kit/address"
)

const (
	payloadHex = "0102030405060708090a0b0c0d0e0f1011121314"

	cosmosOperatorAddress = "cosmosvaloper1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc56kct20"
	cosmosAccountAddress  = "cosmos1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5lzv7xu"
	osmoAccountAddress    = "osmo1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5helwsw"

	// consensus pubkey fixtures
	secpPubkeyBase64    = "AmRlZmdoaWprbG1ub3BxcnN0dXZ3eHl6e3x9fn+AgYKD"
	secpPubkeyHexAddr   = "12292BCDF6535CDF30538A5C11B72BC5A4D3D371"
	secpValconspub      = "cosmosvalconspub1zcjduepqqfjx2en8dp5k56mvd4hx7ur3wfehgatkwau8j7nm037huluqsxpgxkg260x"
	edPubkeyBase64      = "yMnKy8zNzs/Q0dLT1NXW19jZ2tvc3d7f4OHi4+Tl5uc="
	edPubkeyHexAddr     = "DDAA3357F98F1E5186C4317959832AEB4F616EF4"
	edValconspub        = "cosmosvalconspub1zcjduepqeryu4j7veh8vl5x36tfaf4wk6lvdnkkmmnwaahlqu83w8e89umnsum4p7p"
	shortAccountAddress = "cosmos1qypqxpq9qcrsszg2pvxq6rs0zqasfxjr"
)

func TestDecodeEncode(t *testing.T) {
	t.Parallel()

	for _, addr := range []string{cosmosOperatorAddress, cosmosAccountAddress, osmoAccountAddress, edValconspub} {
		prefix, data, err := address.Decode(addr)
		require.NoError(t, err)
		encoded, err := address.Encode(prefix, data)
		require.NoError(t, err)
		require.Equal(t, addr, encoded)
	}

	prefix, data, err := address.Decode(cosmosAccountAddress)
	require.NoError(t, err)
	require.Equal(t, "cosmos", prefix)
	require.Equal(t, payloadHex, hex.EncodeToString(data))

	_, _, err = address.Decode("cosmos1invalid")
	require.Error(t, err)
}

func TestOperatorAddressToAccount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		operatorAddress string
		want            string
		wantErr         bool
	}{
		{
			name:            "cosmos",
			operatorAddress: cosmosOperatorAddress,
			want:            cosmosAccountAddress,
		},
		{
			name:            "osmo",
			operatorAddress: "osmovaloper1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5dwhd8f",
			want:            osmoAccountAddress,
		},
		{
			name:            "iris",
			operatorAddress: "ivavaloper1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5d3xnqs",
			want:            "iaa1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc52qv0yd",
		},
		{
			name:            "crypto_org",
			operatorAddress: "crocncl1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5y58wc3",
			want:            "cro1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc58ey86d",
		},
		{
			name:            "invalid",
			operatorAddress: "cosmosvaloper1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc56kct21",
			wantErr:         true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := address.OperatorAddressToAccount(tt.operatorAddress)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAccountPrefix(t *testing.T) {
	t.Parallel()

	require.Equal(t, "cosmos", address.AccountPrefix("cosmosvaloper"))
	require.Equal(t, "iaa", address.AccountPrefix("iva"))
	require.Equal(t, "iaa", address.AccountPrefix("ivavaloper"))
	require.Equal(t, "cro", address.AccountPrefix("crocncl"))
	require.Equal(t, "cosmos", address.AccountPrefix("cosmos"))
}

func TestToSignAddress(t *testing.T) {
	t.Parallel()

	got, err := address.ToSignAddress(osmoAccountAddress)
	require.NoError(t, err)
	require.Equal(t, cosmosAccountAddress, got)

	got, err = address.ToSignAddress(cosmosAccountAddress)
	require.NoError(t, err)
	require.Equal(t, cosmosAccountAddress, got)
}

func TestPubkeyToAccountAddress(t *testing.T) {
	t.Parallel()

	payload, err := hex.DecodeString(payloadHex)
	require.NoError(t, err)

	got, err := address.PubkeyToAccountAddress(payload[:16], "cosmos")
	require.NoError(t, err)
	require.Equal(t, shortAccountAddress, got)

	// 20 bytes with cosmos prefix is 45 chars
	_, err = address.PubkeyToAccountAddress(payload, "cosmos")
	require.Error(t, err)
}

func TestConsensusPubkeyToHexAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pubkey  address.ConsensusPubkey
		want    string
		wantErr bool
	}{
		{
			name:   "structured_secp256k1",
			pubkey: address.NewStructuredConsensusPubkey("tendermint/PubKeySecp256k1", secpPubkeyBase64),
			want:   secpPubkeyHexAddr,
		},
		{
			name:   "structured_ed25519",
			pubkey: address.NewStructuredConsensusPubkey("/cosmos.crypto.ed25519.PubKey", edPubkeyBase64),
			want:   edPubkeyHexAddr,
		},
		{
			name:   "bech32_with_amino_prefix",
			pubkey: address.NewBech32ConsensusPubkey(edValconspub),
			want:   edPubkeyHexAddr,
		},
		{
			name:   "bech32_secp256k1",
			pubkey: address.NewBech32ConsensusPubkey(secpValconspub),
			want:   secpPubkeyHexAddr,
		},
		{
			name:    "invalid_base64",
			pubkey:  address.NewStructuredConsensusPubkey("tendermint/PubKeyEd25519", "!!"),
			wantErr: true,
		},
		{
			name:    "invalid_bech32",
			pubkey:  address.NewBech32ConsensusPubkey("cosmosvalconspub1invalid"),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := address.ConsensusPubkeyToHexAddress(tt.pubkey)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.True(t, address.IsHexAddress(got))
		})
	}
}

func TestConsensusPubkey_JSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		json       string
		wantBech32 bool
		wantValue  string
		wantType   string
	}{
		{
			name:       "bech32",
			json:       `"` + edValconspub + `"`,
			wantBech32: true,
			wantValue:  edValconspub,
		},
		{
			name:      "amino",
			json:      `{"type":"tendermint/PubKeyEd25519","value":"` + edPubkeyBase64 + `"}`,
			wantValue: edPubkeyBase64,
			wantType:  "tendermint/PubKeyEd25519",
		},
		{
			name:      "proto",
			json:      `{"@type":"/cosmos.crypto.ed25519.PubKey","key":"` + edPubkeyBase64 + `"}`,
			wantValue: edPubkeyBase64,
			wantType:  "/cosmos.crypto.ed25519.PubKey",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var pk address.ConsensusPubkey
			require.NoError(t, json.Unmarshal([]byte(tt.json), &pk))
			require.Equal(t, tt.wantBech32, pk.IsBech32())
			require.Equal(t, tt.wantValue, pk.String())
			require.Equal(t, tt.wantType, pk.Type())

			hexAddr, err := address.ConsensusPubkeyToHexAddress(pk)
			require.NoError(t, err)
			require.Equal(t, edPubkeyHexAddr, hexAddr)
		})
	}

	var pk address.ConsensusPubkey
	require.Error(t, json.Unmarshal([]byte(`12`), &pk))
}

func TestIsHexAddress(t *testing.T) {
	t.Parallel()

	require.True(t, address.IsHexAddress(edPubkeyHexAddr))
	require.False(t, address.IsHexAddress("ddaa3357f98f1e5186c4317959832aeb4f616ef4"))
	require.False(t, address.IsHexAddress(edPubkeyHexAddr+"00"))
	require.False(t, address.IsHexAddress(""))
}
