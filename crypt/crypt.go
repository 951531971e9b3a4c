package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrFormat reports malformed input at the decryption boundary:
	// bad base64, or a ciphertext that is not whole blocks.
	ErrFormat = errors.New("malformed ciphertext")

	// ErrDecryption reports a decrypt that ran but produced garbage:
	// invalid padding or a non-text plaintext. Wrong key material or a
	// corrupted blob look identical from here.
	ErrDecryption = errors.New("decryption failed")
)

// Decrypt decrypts a base64 AES-128-CBC blob and returns the plaintext.
//
// key is used as raw bytes (the game key is 16 ASCII characters, not
// base64 of anything decryptable); iv is base64 of one block.
func Decrypt(cipherB64, key, ivB64 string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(cipherB64)
	if err != nil {
		return "", fmt.Errorf("%w: base64: %v", ErrFormat, err)
	}
	iv, err := base64.StdEncoding.DecodeString(ivB64)
	if err != nil {
		return "", fmt.Errorf("%w: iv base64: %v", ErrFormat, err)
	}
	if len(iv) != aes.BlockSize {
		return "", fmt.Errorf("%w: iv is %d bytes, want %d", ErrFormat, len(iv), aes.BlockSize)
	}
	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d is not a multiple of %d", ErrFormat, len(data), aes.BlockSize)
	}

	block, err := aes.NewCipher([]byte(key))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFormat, err)
	}
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(data, data)

	plain, err := unpad(data)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plain) {
		return "", fmt.Errorf("%w: plaintext is not valid text", ErrDecryption)
	}
	return string(plain), nil
}

// unpad strips PKCS#7 padding.
func unpad(data []byte) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > aes.BlockSize || n > len(data) {
		return nil, fmt.Errorf("%w: padding length %d", ErrDecryption, n)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: inconsistent padding", ErrDecryption)
		}
	}
	return data[:len(data)-n], nil
}
