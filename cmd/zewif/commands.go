package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/suffix-labs/zewif/pkg/archive"
	"github.com/suffix-labs/zewif/pkg/document"
	"github.com/suffix-labs/zewif/pkg/merkle"
	"github.com/suffix-labs/zewif/pkg/parser"
	"github.com/suffix-labs/zewif/pkg/zewif"
)

// readDocument loads a raw CBOR document or an archive from path.
func readDocument(e *env, path string) (*document.Document, error) {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	payload := data
	archived := archive.IsArchive(data)
	if archived {
		var header archive.Header
		if payload, header, err = archive.Open(data); err != nil {
			return nil, ierrors.Wrap(err, path)
		}
		e.logger.Debug("opened archive",
			"version", header.Version,
			"compression", header.Compression,
			"checksum", header.Checksum != nil)
	}

	d, err := document.Unmarshal(payload)
	if err != nil {
		return nil, ierrors.Wrap(err, path)
	}

	e.logger.Debug("read document",
		"path", path,
		"bytes", len(data),
		"payload_bytes", len(payload),
		"archived", archived,
		"duration", time.Since(start))

	return d, nil
}

func cmdInspect(args []string, stdout, stderr io.Writer) error {
	flagSet, common := newFlagSet("inspect", stderr)
	dump := flagSet.Bool("dump", false, "dump every decoded entity (default from inspect.dump)")
	e, err := parse(flagSet, common, args, 1, stderr)
	if err != nil {
		return err
	}

	d, err := readDocument(e, e.args[0])
	if err != nil {
		return err
	}

	tag, err := d.Type()
	if err != nil {
		return err
	}

	start := time.Now()
	v, err := zewif.Decode(d)
	if err != nil {
		return err
	}
	e.logger.Debug("decoded document", "type", tag, "duration", time.Since(start))

	fmt.Fprintf(stdout, "type:   %s\n", tag)
	fmt.Fprintf(stdout, "digest: %s\n", d.Digest())

	var verifyErr error
	if z, ok := v.(*zewif.Zewif); ok {
		verifyErr = summarize(stdout, z)
	}

	if *dump || e.cfg.Inspect.Dump {
		spew.Fdump(stdout, v)
	}

	return verifyErr
}

// summarize prints the contents of an export and checks the id of every
// transaction that carries its raw bytes.
func summarize(w io.Writer, z *zewif.Zewif) error {
	var accounts, addresses, sent int
	for _, wallet := range z.Wallets() {
		for _, account := range wallet.Accounts() {
			accounts++
			addresses += len(account.Addresses())
			sent += len(account.SaplingSentOutputs())
		}
	}

	fmt.Fprintf(w, "id:            %s\n", z.ID())
	fmt.Fprintf(w, "export height: %s\n", z.ExportHeight())
	if hash := z.ExportHeightBlockHash(); hash != nil {
		fmt.Fprintf(w, "block hash:    %s\n", hash)
	}
	fmt.Fprintf(w, "wallets:       %d\n", len(z.Wallets()))
	fmt.Fprintf(w, "accounts:      %d\n", accounts)
	fmt.Fprintf(w, "addresses:     %d\n", addresses)
	fmt.Fprintf(w, "sent outputs:  %d\n", sent)

	txs := z.Transactions()
	var outputs, actions, joinSplits, mismatched int
	var errs []error
	for _, tx := range txs {
		outputs += len(tx.SaplingOutputs())
		actions += len(tx.OrchardActions())
		joinSplits += len(tx.JoinSplits())
		if err := tx.VerifyTxID(); err != nil {
			mismatched++
			errs = append(errs, ierrors.Wrap(err, tx.TxID().String()))
		}
	}

	fmt.Fprintf(w, "transactions:  %d\n", len(txs))
	fmt.Fprintf(w, "  sapling outputs: %d\n", outputs)
	fmt.Fprintf(w, "  orchard actions: %d\n", actions)
	fmt.Fprintf(w, "  joinsplits:      %d\n", joinSplits)
	if mismatched > 0 {
		fmt.Fprintf(w, "  txid mismatches: %d\n", mismatched)

		return ierrors.Join(errs...)
	}

	return nil
}

func cmdDiag(args []string, stdout, stderr io.Writer) error {
	flagSet, common := newFlagSet("diag", stderr)
	format := flagSet.Bool("tree", false, "print an indented tree instead of CBOR diagnostic notation")
	e, err := parse(flagSet, common, args, 1, stderr)
	if err != nil {
		return err
	}

	d, err := readDocument(e, e.args[0])
	if err != nil {
		return err
	}

	if *format {
		fmt.Fprintln(stdout, d.Format())

		return nil
	}

	diag, err := d.Diagnose()
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, diag)

	return nil
}

func cmdDigest(args []string, stdout, stderr io.Writer) error {
	flagSet, common := newFlagSet("digest", stderr)
	e, err := parse(flagSet, common, args, 1, stderr)
	if err != nil {
		return err
	}

	d, err := readDocument(e, e.args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, d.Digest())

	return nil
}

func cmdWitness(args []string, stdout, stderr io.Writer) error {
	flagSet, common := newFlagSet("witness", stderr)
	protocolName := flagSet.String("protocol", "", "sprout, sapling or orchard (default from merkle.protocol)")
	showDocument := flagSet.Bool("document", false, "also print the witness document")
	e, err := parse(flagSet, common, args, 1, stderr)
	if err != nil {
		return err
	}

	protocol, err := e.cfg.Protocol()
	if *protocolName != "" {
		protocol, err = zewif.ParseProtocol(*protocolName)
	}
	if err != nil {
		return err
	}

	data, err := hex.DecodeString(strings.TrimSpace(e.args[0]))
	if err != nil {
		return ierrors.Wrap(err, "witness hex")
	}

	p := parser.New(data)
	mw, err := merkle.ParseWitness(p, protocol.Depth())
	if err != nil {
		return ierrors.Wrap(err, "witness")
	}
	if err := p.Finished(); err != nil {
		return ierrors.Wrap(err, "witness")
	}

	w, err := zewif.NewWitness(protocol, mw)
	if err != nil {
		return err
	}
	e.logger.Debug("parsed witness", "protocol", protocol, "bytes", len(data))

	fmt.Fprintf(stdout, "protocol: %s\n", protocol)
	fmt.Fprintf(stdout, "depth:    %d\n", protocol.Depth())
	fmt.Fprintf(stdout, "position: %d\n", w.Position())
	fmt.Fprintf(stdout, "leaf:     %s\n", mw.Element())
	fmt.Fprintf(stdout, "filled:   %d\n", len(mw.Filled()))
	fmt.Fprintf(stdout, "cursor:   %t\n", mw.Cursor() != nil)

	if h, ok := protocol.Hasher(); ok {
		path, err := mw.Path(h)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "root:     %s\n", mw.Root(h))
		fmt.Fprintln(stdout, "path:")
		for level, sibling := range path.AuthPath {
			fmt.Fprintf(stdout, "  %2d %s\n", level, sibling)
		}
	} else {
		e.logger.Info("root and path need the protocol's hash, which this tool does not provide", "protocol", protocol)
	}

	if *showDocument {
		fmt.Fprintln(stdout, w.ToDocument().Format())
	}

	return nil
}

func cmdPack(args []string, stdout, stderr io.Writer) error {
	flagSet, common := newFlagSet("pack", stderr)
	compression := flagSet.String("compression", "", "none, lz4 or zstd (default from archive.compression)")
	noChecksum := flagSet.Bool("no-checksum", false, "omit the payload checksum")
	e, err := parse(flagSet, common, args, 2, stderr)
	if err != nil {
		return err
	}

	opts, err := e.cfg.ArchiveOptions()
	if err != nil {
		return err
	}
	if *compression != "" {
		if opts.Compression, err = archive.ParseCompression(*compression); err != nil {
			return err
		}
	}
	if *noChecksum {
		opts.Checksum = false
	}

	d, err := readDocument(e, e.args[0])
	if err != nil {
		return err
	}

	if err := writeArchive(e.args[1], d, opts); err != nil {
		return err
	}

	e.logger.Debug("wrote archive", "path", e.args[1], "compression", opts.Compression, "checksum", opts.Checksum)
	fmt.Fprintf(stdout, "%s %s\n", d.Digest(), e.args[1])

	return nil
}

// writeArchive writes d to path as an archive. The file is removed again
// if writing it fails.
func writeArchive(path string, d *document.Document, opts archive.Options) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return archive.Write(out, d, opts)
}
