package calldata

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeInitialize(t *testing.T) {
	t.Parallel()

	d, err := LookupDeployment("roulette")
	require.NoError(t, err)

	data, err := EncodeInitialize(d.InitArgs)
	require.NoError(t, err)
	require.Len(t, data, 4+2*32)

	selector := crypto.Keccak256([]byte(InitializeSignature))[:4]
	assert.Equal(t, selector, data[:4])

	assert.Equal(t, make([]byte, 12), data[4:16])
	assert.Equal(t, d.BetNumber.Bytes(), data[16:36])
	assert.Equal(t, make([]byte, 12), data[36:48])
	assert.Equal(t, d.Token.Bytes(), data[48:68])

	hex := Hex(data)
	assert.True(t, strings.HasPrefix(hex, "0x"))
	assert.Contains(t, hex, "4c433d4b0f9c7f1f7ac4a7025b582536ec07a506")
	assert.True(t, strings.HasSuffix(hex, "4a6aa905ef85f055c3146ce70ac0bf3052e8be4d"))
}

func TestEncodeCallMatchesInitialize(t *testing.T) {
	t.Parallel()

	d, err := LookupDeployment("sicbo")
	require.NoError(t, err)

	viaCall, err := EncodeCall(InitializeSignature, d.BetNumber, d.Token)
	require.NoError(t, err)
	direct, err := EncodeInitialize(d.InitArgs)
	require.NoError(t, err)
	assert.Equal(t, direct, viaCall)
}

func TestEncodeCallUint256(t *testing.T) {
	t.Parallel()

	value := new(big.Int).Lsh(big.NewInt(6), 248)
	data, err := EncodeCall("placeBet(uint256)", value)
	require.NoError(t, err)
	require.Len(t, data, 36)
	assert.Equal(t, byte(0x06), data[4])
}

func TestEncodeCallErrors(t *testing.T) {
	t.Parallel()

	_, err := EncodeCall("initialize(address", common.Address{})
	assert.ErrorContains(t, err, "invalid signature")

	_, err = EncodeCall(InitializeSignature, common.Address{})
	assert.Error(t, err)
}

func TestParseAddress(t *testing.T) {
	t.Parallel()

	addr, err := ParseAddress(" 0x4C433D4b0F9C7F1f7aC4A7025B582536ec07A506 ")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x4c433d4b0f9c7f1f7ac4a7025b582536ec07a506"), addr)

	for _, bad := range []string{"", "0x1234", "4C433D4b0F9C7F1f7aC4A7025B582536ec07A506", "0xZZ433D4b0F9C7F1f7aC4A7025B582536ec07A506"} {
		_, err := ParseAddress(bad)
		assert.Error(t, err, bad)
	}
}

func TestLookupDeployment(t *testing.T) {
	t.Parallel()

	d, err := LookupDeployment("SicBo")
	require.NoError(t, err)
	assert.Equal(t, "sicbo", d.Game)
	assert.Equal(t, common.HexToAddress("0xc3f1c6A8428D1D9497944f35F68e284Ee75Da629"), d.Token)

	_, err = LookupDeployment("keno")
	assert.EqualError(t, err, `no deployment for "keno" (available: roulette, sicbo)`)
}
