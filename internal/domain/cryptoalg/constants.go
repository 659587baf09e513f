package cryptoalg

// CipherFormatIntegers writes one decimal ciphertext integer per line.
const CipherFormatIntegers = "integers"

// CipherFormatText writes each ciphertext integer as a single UTF-8 character.
// Only usable while every ciphertext value is a valid rune.
const CipherFormatText = "text"
