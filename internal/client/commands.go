// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/zalando/go-keyring"
)

const stdStream = "-"

func (a *App) runGenerate(ctx context.Context, args []string) error {
	fs := a.newFlagSet("generate")
	length := fs.Int("length", 0, "password length (server default when unset)")
	upper := fs.Bool("upper", true, "include upper-case letters")
	digits := fs.Bool("digits", true, "include digits")
	special := fs.Bool("special", true, "include punctuation")
	toClipboard := fs.Bool("copy", false, "copy to the clipboard instead of printing")
	set, err := parse(fs, args)
	if err != nil {
		return err
	}

	var req models.GeneratePasswordRequest
	if set["length"] {
		req.Length = length
	}
	if set["upper"] {
		req.UseUpper = upper
	}
	if set["digits"] {
		req.UseDigits = digits
	}
	if set["special"] {
		req.UseSpecial = special
	}

	password, err := a.adapter.GeneratePassword(ctx, req)
	if err != nil {
		return fmt.Errorf("generate password: %w", err)
	}
	return a.emitSecret("password", password, *toClipboard)
}

func (a *App) runPassphrase(ctx context.Context, args []string) error {
	fs := a.newFlagSet("passphrase")
	words := fs.Int("words", 0, "number of words (server default when unset)")
	separator := fs.String("separator", "", "text placed between words (server default when unset)")
	toClipboard := fs.Bool("copy", false, "copy to the clipboard instead of printing")
	set, err := parse(fs, args)
	if err != nil {
		return err
	}

	var req models.GeneratePassphraseRequest
	if set["words"] {
		req.Words = words
	}
	if set["separator"] {
		req.Separator = separator
	}

	passphrase, err := a.adapter.GeneratePassphrase(ctx, req)
	if err != nil {
		return fmt.Errorf("generate passphrase: %w", err)
	}
	return a.emitSecret("passphrase", passphrase, *toClipboard)
}

func (a *App) emitSecret(kind, secret string, toClipboard bool) error {
	if !toClipboard {
		fmt.Fprintln(a.stdout, secret)
		return nil
	}
	if err := a.copy(secret); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	fmt.Fprintf(a.stdout, "%s copied to clipboard\n", kind)
	return nil
}

func (a *App) runSave(ctx context.Context, args []string) error {
	fs := a.newFlagSet("save")
	vault := fs.String("vault", models.DefaultVaultName, "vault name")
	in := fs.String("in", stdStream, "CSV file with a website,username,password,notes header ('-' for stdin)")
	plain := fs.Bool("plain", false, "store the records unencrypted")
	useKeyring := fs.Bool("keyring", false, "read the passphrase from, and remember it in, the OS keyring")
	if _, err := parse(fs, args); err != nil {
		return err
	}

	records, err := a.readRecords(*in)
	if err != nil {
		return err
	}

	req := models.SaveRequest{
		Passwords: make([]models.RecordInput, len(records)),
		Filename:  *vault,
	}
	for i, r := range records {
		req.Passwords[i] = models.NewRecordInput(r)
	}

	var source passphraseSource
	if !*plain {
		req.EncryptionPassword, source, err = a.passphrase(req.VaultName(), *useKeyring, true)
		if err != nil {
			return err
		}
		if source == sourcePrompt && service.IsWeakPassphrase(req.EncryptionPassword) {
			fmt.Fprintf(a.stderr, "warning: passphrase is shorter than %d characters\n", service.WeakPassphraseLength)
		}
	}

	name, err := a.adapter.SaveVault(ctx, req)
	if err != nil {
		return fmt.Errorf("save vault: %w", err)
	}
	if !*plain {
		a.remember(name, req.EncryptionPassword, source, *useKeyring)
	}

	mode := "encrypted"
	if *plain {
		mode = "plaintext"
	}
	fmt.Fprintf(a.stdout, "saved %d records to %s (%s)\n", len(records), name, mode)
	return nil
}

func (a *App) readRecords(path string) ([]models.Record, error) {
	var r io.Reader = a.stdin
	if path != stdStream {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open records: %w", err)
		}
		defer f.Close()
		r = f
	}

	records, err := store.DecodeCSV(r)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return records, nil
}

func (a *App) runLoad(ctx context.Context, args []string) error {
	fs := a.newFlagSet("load")
	vault := fs.String("vault", models.DefaultVaultName, "vault name")
	out := fs.String("out", stdStream, "destination CSV file ('-' for stdout)")
	plain := fs.Bool("plain", false, "return stored values without decrypting")
	useKeyring := fs.Bool("keyring", false, "read the passphrase from, and remember it in, the OS keyring")
	if _, err := parse(fs, args); err != nil {
		return err
	}

	records, err := a.loadRecords(ctx, *vault, *plain, *useKeyring)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = store.EncodeCSV(&buf, records); err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	return a.writeOutput(*out, buf.Bytes())
}

func (a *App) runView(ctx context.Context, args []string) error {
	fs := a.newFlagSet("view")
	vault := fs.String("vault", models.DefaultVaultName, "vault name")
	plain := fs.Bool("plain", false, "show stored values without decrypting")
	useKeyring := fs.Bool("keyring", false, "read the passphrase from, and remember it in, the OS keyring")
	if _, err := parse(fs, args); err != nil {
		return err
	}

	records, err := a.loadRecords(ctx, *vault, *plain, *useKeyring)
	if err != nil {
		return err
	}
	return a.view(ctx, *vault, records)
}

func (a *App) loadRecords(ctx context.Context, vault string, plain, useKeyring bool) ([]models.Record, error) {
	req := models.LoadRequest{Filename: vault}

	var (
		source passphraseSource
		err    error
	)
	if !plain {
		req.DecryptionPassword, source, err = a.passphrase(req.VaultName(), useKeyring, false)
		if err != nil {
			return nil, err
		}
	}

	records, err := a.adapter.LoadVault(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("load vault: %w", err)
	}
	if !plain {
		a.remember(req.VaultName(), req.DecryptionPassword, source, useKeyring)
	}
	return records, nil
}

func (a *App) runDownload(ctx context.Context, args []string) error {
	fs := a.newFlagSet("download")
	vault := fs.String("vault", models.DefaultVaultName, "vault name")
	out := fs.String("out", "", "destination file, '-' for stdout (defaults to the vault name)")
	if _, err := parse(fs, args); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := a.adapter.DownloadVault(ctx, *vault, &buf); err != nil {
		return fmt.Errorf("download vault: %w", err)
	}

	dst := *out
	if dst == "" {
		dst = *vault
	}
	if err := a.writeOutput(dst, buf.Bytes()); err != nil {
		return err
	}
	if dst != stdStream {
		fmt.Fprintf(a.stdout, "downloaded %s to %s\n", *vault, dst)
	}
	return nil
}

func (a *App) writeOutput(path string, data []byte) error {
	if path == stdStream {
		_, err := a.stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (a *App) runForget(_ context.Context, args []string) error {
	fs := a.newFlagSet("forget")
	vault := fs.String("vault", models.DefaultVaultName, "vault name")
	if _, err := parse(fs, args); err != nil {
		return err
	}

	err := keyring.Delete(keyringService, *vault)
	switch {
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Fprintf(a.stdout, "no passphrase stored for %s\n", *vault)
		return nil
	case err != nil:
		return fmt.Errorf("forget passphrase: %w", err)
	}

	fmt.Fprintf(a.stdout, "passphrase for %s removed from keyring\n", *vault)
	return nil
}

func (a *App) runVersion(ctx context.Context, args []string) error {
	fs := a.newFlagSet("version")
	if _, err := parse(fs, args); err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, a.buildInfo.String())

	version, err := a.adapter.Version(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("server version unavailable")
		fmt.Fprintln(a.stdout, "Server version: unavailable")
		return nil
	}
	fmt.Fprintf(a.stdout, "Server version: %s\n", version)
	return nil
}
