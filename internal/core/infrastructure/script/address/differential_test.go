package address

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/digest"
	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/netparams"
	"github.com/weisyn/scriptkit/pkg/types"
)

// TestWIFAgainstBtcutil WIF编解码与btcutil对照
func TestWIFAgainstBtcutil(t *testing.T) {
	w := NewWIF(netparams.Default())

	testCases := []struct {
		wif        string
		params     *chaincfg.Params
		network    types.NetworkParams
		compressed bool
	}{
		{"KwdMAjGmerYanjeui5SHS7JkmpZvVipYvB2LJGU1ZxJwYvP98617", &chaincfg.MainNetParams, netparams.MainNet, true},
		{"cMzLdeGd5vEqxB8B6VFQoRopQ3sLAAvEzDAoQgvX54xwofSWj1fx", &chaincfg.TestNet3Params, netparams.TestNet, true},
		{"5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ", &chaincfg.MainNetParams, netparams.MainNet, false},
		{"91gGn1HgSap6CbU12F6z3pJri26xzp7Ay1VW6NHCoEayNXwRpu2", &chaincfg.TestNet3Params, netparams.TestNet, false},
	}

	for _, tc := range testCases {
		ref, err := btcutil.DecodeWIF(tc.wif)
		require.NoError(t, err, tc.wif)
		require.Equal(t, tc.compressed, ref.CompressPubKey, tc.wif)
		require.True(t, ref.IsForNet(tc.params), tc.wif)

		info, err := w.Decode(tc.wif)
		require.NoError(t, err, tc.wif)
		require.Equal(t, ref.PrivKey.Serialize(), info.Key[:], tc.wif)
		require.Equal(t, tc.compressed, info.Compressed, tc.wif)
		require.Equal(t, tc.network.Name, info.Network.Name, tc.wif)

		mine, err := w.Encode(info.Key[:], tc.network, tc.compressed)
		require.NoError(t, err, tc.wif)
		require.Equal(t, tc.wif, mine)

		rebuilt, err := btcutil.NewWIF(ref.PrivKey, tc.params, tc.compressed)
		require.NoError(t, err, tc.wif)
		require.Equal(t, rebuilt.String(), mine, tc.wif)
	}
}

// TestAddressEncodingAgainstBtcutil 地址编码与btcutil对照
func TestAddressEncodingAgainstBtcutil(t *testing.T) {
	c := newCodec(t)
	h160 := digest.Hash160(mustHex(t, wikiKeyCompressed))
	program32 := digest.SHA256([]byte("witness script"))

	refPKH, err := btcutil.NewAddressPubKeyHash(h160, &chaincfg.MainNetParams)
	require.NoError(t, err)
	mine, err := c.FromHash160(netparams.MainNet.P2PKHPrefix, h160, netparams.MainNet)
	require.NoError(t, err)
	require.Equal(t, refPKH.EncodeAddress(), mine)

	refSH, err := btcutil.NewAddressScriptHashFromHash(h160, &chaincfg.MainNetParams)
	require.NoError(t, err)
	mine, err = c.FromHash160(netparams.MainNet.P2SHPrefix, h160, netparams.MainNet)
	require.NoError(t, err)
	require.Equal(t, refSH.EncodeAddress(), mine)

	refWPKH, err := btcutil.NewAddressWitnessPubKeyHash(h160, &chaincfg.MainNetParams)
	require.NoError(t, err)
	mine, err = c.FromWitness(0, h160, netparams.MainNet)
	require.NoError(t, err)
	require.Equal(t, refWPKH.EncodeAddress(), mine)

	refWSH, err := btcutil.NewAddressWitnessScriptHash(program32, &chaincfg.MainNetParams)
	require.NoError(t, err)
	mine, err = c.FromWitness(0, program32, netparams.MainNet)
	require.NoError(t, err)
	require.Equal(t, refWSH.EncodeAddress(), mine)

	refTestnet, err := btcutil.NewAddressPubKeyHash(h160, &chaincfg.TestNet3Params)
	require.NoError(t, err)
	mine, err = c.FromHash160(netparams.TestNet.P2PKHPrefix, h160, netparams.TestNet)
	require.NoError(t, err)
	require.Equal(t, refTestnet.EncodeAddress(), mine)
}

// TestScriptDerivationAgainstBtcd 地址与脚本互转与btcd对照
func TestScriptDerivationAgainstBtcd(t *testing.T) {
	c := newCodec(t)

	addresses := []string{
		"1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs",
		"37k7toV1Nv4DfmQbmZ8KuZDQCYK9x5KpzP",
		"bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
		"bc1q0df3qvuuvqqlw4s5m2jsswpelf2dgct97mzkqfwv2nfe02z62uyq7n4zjj",
	}

	for _, addr := range addresses {
		ref, err := btcutil.DecodeAddress(addr, &chaincfg.MainNetParams)
		require.NoError(t, err, addr)
		refScript, err := txscript.PayToAddrScript(ref)
		require.NoError(t, err, addr)

		mine, net, err := c.ToScriptPubKey(addr)
		require.NoError(t, err, addr)
		require.Equal(t, refScript, mine, addr)
		require.Equal(t, "mainnet", net.Name, addr)

		back, err := c.FromScriptPubKey(mine, *net)
		require.NoError(t, err, addr)
		require.Equal(t, addr, back, addr)
	}
}
