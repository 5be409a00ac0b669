package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/tyler-smith/go-bip39"

	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/address"
	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/netparams"
)

var (
	registry  = netparams.Default()
	addresses = address.New(registry)
	wifCodec  = address.NewWIF(registry)
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("ScriptKit密钥生成工具")
		fmt.Println("用法:")
		fmt.Println("  scriptkit-keygen generate <count>  - 生成指定数量的密钥")
		fmt.Println("  scriptkit-keygen import <hex私钥>  - 导入十六进制私钥")
		fmt.Println("")
		fmt.Println("示例:")
		fmt.Println("  scriptkit-keygen generate 5")
		fmt.Println("  scriptkit-keygen import 0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d")
		return
	}

	switch os.Args[1] {
	case "generate":
		count := 1
		if len(os.Args) >= 3 {
			fmt.Sscanf(os.Args[2], "%d", &count)
		}
		generateKeys(count)
	case "import":
		if len(os.Args) < 3 {
			fmt.Println("缺少私钥参数")
			os.Exit(1)
		}
		importKey(os.Args[2])
	default:
		fmt.Printf("未知命令: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func generateKeys(count int) {
	fmt.Printf("🔑 生成 %d 个密钥\n", count)
	fmt.Println("====================")

	for i := 0; i < count; i++ {
		entropy := make([]byte, 32)
		if _, err := rand.Read(entropy); err != nil {
			log.Fatalf("生成熵失败: %v", err)
		}

		mnemonic, err := bip39.NewMnemonic(entropy)
		if err != nil {
			log.Fatalf("生成助记词失败: %v", err)
		}

		// 种子摘要作为私钥标量，极小概率越界时重新摘要
		seed := bip39.NewSeed(mnemonic, "")
		key := sha256.Sum256(seed)
		var scalar secp256k1.ModNScalar
		for scalar.SetBytes(&key) != 0 || scalar.IsZero() {
			key = sha256.Sum256(key[:])
		}
		scalar.Zero()

		fmt.Printf("密钥 %d:\n", i+1)
		fmt.Printf("  助记词: %s\n", mnemonic)
		printKey(key[:])
		fmt.Println()
	}
}

func importKey(keyHex string) {
	fmt.Println("🔑 导入私钥")
	fmt.Println("====================")

	key, err := hex.DecodeString(keyHex)
	if err != nil {
		log.Fatalf("解析私钥hex失败: %v", err)
	}
	if len(key) != 32 {
		log.Fatalf("私钥长度无效: %d字节", len(key))
	}

	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(key); overflow || scalar.IsZero() {
		log.Fatalf("私钥不在有效标量范围内: %s", keyHex)
	}
	scalar.Zero()

	printKey(key)
}

func printKey(key []byte) {
	_, pub := btcec.PrivKeyFromBytes(key)
	pubKey := pub.SerializeCompressed()

	fmt.Printf("  私钥: %s\n", hex.EncodeToString(key))
	fmt.Printf("  公钥: %s\n", hex.EncodeToString(pubKey))

	for _, net := range registry.Networks() {
		wif, err := wifCodec.Encode(key, net, true)
		if err != nil {
			log.Fatalf("WIF编码失败: %v", err)
		}

		p2pkh, err := addresses.P2PKH(pubKey, net)
		if err != nil {
			log.Fatalf("P2PKH地址推导失败: %v", err)
		}

		p2wpkh, err := addresses.P2WPKH(pubKey, net)
		if err != nil {
			log.Fatalf("P2WPKH地址推导失败: %v", err)
		}

		wrapped, err := addresses.P2WPKHP2SH(pubKey, net)
		if err != nil {
			log.Fatalf("P2WPKH-P2SH地址推导失败: %v", err)
		}

		fmt.Printf("  %s:\n", net.Name)
		fmt.Printf("    WIF: %s\n", wif)
		fmt.Printf("    P2PKH地址: %s\n", p2pkh)
		fmt.Printf("    P2WPKH地址: %s\n", p2wpkh)
		fmt.Printf("    P2WPKH-P2SH地址: %s\n", wrapped)
	}
}
