package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/textbook-rsa/internal/app"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// Default artifact file names
const (
	DefaultMessageFile   = "message.txt"
	DefaultEncryptedFile = "message_encrypted.txt"
	DefaultDecryptedFile = "message_decrypted.txt"
	DefaultSignatureFile = "signature.txt"
)

// TextbookRSACommandHandler encapsulates logic for handling textbook RSA operations via CLI.
type TextbookRSACommandHandler struct {
	processor cryptoalg.TextbookRSAProcessor
	keySetup  *app.KeySetupService
	logger    logger.Logger
}

// NewTextbookRSACommandHandler initializes a new TextbookRSACommandHandler with logging,
// a key setup service and a textbook RSA processor.
func NewTextbookRSACommandHandler() (*TextbookRSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return newTextbookRSACommandHandler(loggerInstance)
}

func newTextbookRSACommandHandler(loggerInstance logger.Logger) (*TextbookRSACommandHandler, error) {
	processor, err := cryptography.NewTextbookRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create textbook RSA processor: %w", err)
	}

	keySetup, err := app.NewKeySetupService(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key setup service: %w", err)
	}

	return &TextbookRSACommandHandler{
		processor: processor,
		keySetup:  keySetup,
		logger:    loggerInstance,
	}, nil
}

func (commandHandler *TextbookRSACommandHandler) setupSession(cmd *cobra.Command) (*app.Session, error) {
	settings, err := readKeySettings(cmd)
	if err != nil {
		return nil, err
	}
	return commandHandler.keySetup.Setup(settings)
}

// DeriveKeysCmd derives a key pair and logs every component of it
func (commandHandler *TextbookRSACommandHandler) DeriveKeysCmd(cmd *cobra.Command, _ []string) {
	session, err := commandHandler.setupSession(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	km := session.Keys
	commandHandler.logger.Info(fmt.Sprintf("p=%s q=%s n=%s phi=%s", km.P(), km.Q(), km.N(), km.Phi()))
	commandHandler.logger.Info(fmt.Sprintf("public key (n=%s, e=%s)", km.N(), km.E()))
	commandHandler.logger.Info(fmt.Sprintf("private key (n=%s, d=%s)", km.N(), km.D()))
}

// EncryptCmd encrypts a text file character by character
func (commandHandler *TextbookRSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	format, err := cmd.Flags().GetString("cipher-format")
	if err != nil {
		commandHandler.logger.Error("invalid cipher-format flag: ", err)
		return
	}

	session, err := commandHandler.setupSession(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	plainText, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	cipherText, err := commandHandler.processor.Encrypt(string(plainText), session.Keys.PublicKey())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := commandHandler.processor.SaveCipherTextToFile(cipherText, outputFile, format); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Encrypted data path ", outputFile)
}

// DecryptCmd decrypts a ciphertext file back into text
func (commandHandler *TextbookRSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	format, err := cmd.Flags().GetString("cipher-format")
	if err != nil {
		commandHandler.logger.Error("invalid cipher-format flag: ", err)
		return
	}

	session, err := commandHandler.setupSession(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	cipherText, err := commandHandler.processor.ReadCipherTextFromFile(inputFile, format)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	plainText, err := commandHandler.processor.Decrypt(cipherText, session.Keys.PrivateKey())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(filepath.Clean(outputFile), []byte(plainText), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decrypted data path ", outputFile)
}

// SignCmd signs a text file and saves the signature
func (commandHandler *TextbookRSACommandHandler) SignCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	signatureFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}

	session, err := commandHandler.setupSession(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	message, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	signature, err := commandHandler.processor.Sign(string(message), session.Keys.PrivateKey())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := commandHandler.processor.SaveSignatureToFile(signature, signatureFile); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Signature saved at ", signatureFile)
}

// VerifyCmd verifies a signature against a text file
func (commandHandler *TextbookRSACommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	signatureFile, err := cmd.Flags().GetString("signature-file")
	if err != nil {
		commandHandler.logger.Error("invalid signature-file flag: ", err)
		return
	}

	session, err := commandHandler.setupSession(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	message, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	signature, err := commandHandler.processor.ReadSignatureFromFile(signatureFile)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	valid, err := commandHandler.processor.Verify(string(message), signature, session.Keys.PublicKey())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if valid {
		commandHandler.logger.Info("Signature is valid")
	} else {
		commandHandler.logger.Error("Signature is invalid")
	}
}

// InitTextbookRSACommands registers textbook RSA commands
func InitTextbookRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewTextbookRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create textbook RSA command handler: %w", err)
	}

	registerTextbookRSACommands(rootCmd, handler)
	return nil
}

func registerTextbookRSACommands(rootCmd *cobra.Command, handler *TextbookRSACommandHandler) {

	var deriveKeysCmd = &cobra.Command{
		Use:   "derive-keys",
		Short: "Derive a key pair and print p, q, n, phi, e and d",
		Run:   handler.DeriveKeysCmd,
	}
	addKeyFlags(deriveKeysCmd)
	rootCmd.AddCommand(deriveKeysCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a text file one character at a time",
		Run:   handler.EncryptCmd,
	}
	addKeyFlags(encryptCmd)
	encryptCmd.Flags().StringP("input-file", "", DefaultMessageFile, "Path to the plaintext file")
	encryptCmd.Flags().StringP("output-file", "", DefaultEncryptedFile, "Path to the ciphertext output file")
	encryptCmd.Flags().StringP("cipher-format", "", cryptoalg.CipherFormatIntegers, "Ciphertext file format: integers (one value per line) or text (one character per value)")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a ciphertext file",
		Run:   handler.DecryptCmd,
	}
	addKeyFlags(decryptCmd)
	decryptCmd.Flags().StringP("input-file", "", DefaultEncryptedFile, "Path to the ciphertext file")
	decryptCmd.Flags().StringP("output-file", "", DefaultDecryptedFile, "Path to the decrypted output file")
	decryptCmd.Flags().StringP("cipher-format", "", cryptoalg.CipherFormatIntegers, "Ciphertext file format: integers or text")
	rootCmd.AddCommand(decryptCmd)

	var signCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign a text file",
		Run:   handler.SignCmd,
	}
	addKeyFlags(signCmd)
	signCmd.Flags().StringP("input-file", "", DefaultMessageFile, "Path to the file which needs to be signed")
	signCmd.Flags().StringP("output-file", "", DefaultSignatureFile, "Path to the signature output file")
	rootCmd.AddCommand(signCmd)

	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify the signature of a text file",
		Run:   handler.VerifyCmd,
	}
	addKeyFlags(verifyCmd)
	verifyCmd.Flags().StringP("input-file", "", DefaultMessageFile, "Path to the file which needs to be validated")
	verifyCmd.Flags().StringP("signature-file", "", DefaultSignatureFile, "Path to the signature input file")
	rootCmd.AddCommand(verifyCmd)
}
