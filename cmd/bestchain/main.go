// bestchain reads 80-byte block header records from stdin until EOF, selects
// the chain with the greatest accumulated weight, and writes one 36-byte
// (identity, height) record per selected block to stdout, sorted by
// identity. Diagnostics go to stderr.
package main

import (
	"bufio"
	"flag"
	"os"

	"github.com/bsv-blockchain/go-chaincfg"
	"github.com/ordishs/go-utils"
	"github.com/ordishs/gocore"

	"github.com/bsv-blockchain/bestchain/codec"
	"github.com/bsv-blockchain/bestchain/services/chainselect"
	"github.com/bsv-blockchain/bestchain/stores/headermap"
	"github.com/bsv-blockchain/bestchain/ulogger"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logLevel, _ := gocore.Config().Get("logLevel", "INFO")
	if *debug {
		logLevel = "DEBUG"
	}

	logger := ulogger.New("bestchain", ulogger.WithLevel(logLevel))

	store := headermap.New(1 << 20)

	start := gocore.CurrentTime()

	read, err := codec.NewHeaderReader(os.Stdin).ReadAll(store)
	if err != nil {
		logger.Fatalf("failed reading headers from stdin: %v", err)
	}

	gocore.NewStat("bestchain").NewStat("load").AddTime(start)

	logger.Infof("read %d headers", read)

	store.Finalize()
	logger.Infof("sorted %d headers", store.Len())

	tips := chainselect.FindChainTips(store)
	logger.Infof("found %d chain tips", len(tips))

	best, err := chainselect.FindBest(logger, store)
	if err != nil {
		logger.Fatalf("failed to select best chain: %v", err)
	}

	genesis := best.Genesis()
	tip := best.Tip()

	logger.Infof("best chain height %d with %d accumulated work", best.Height(), best.TotalWork())
	logger.Infof("- genesis: %s", utils.ReverseAndHexEncodeSlice(genesis.Hash().CloneBytes()))
	logger.Infof("- tip: %s", utils.ReverseAndHexEncodeSlice(tip.Hash().CloneBytes()))

	if genesis.Hash().String() == chaincfg.MainNetParams.GenesisHash.String() {
		logger.Infof("genesis is the mainnet genesis block")
	}

	out := bufio.NewWriter(os.Stdout)

	if err = codec.WriteChain(out, best); err != nil {
		logger.Fatalf("failed writing best chain: %v", err)
	}

	if err = out.Flush(); err != nil {
		logger.Fatalf("failed flushing best chain: %v", err)
	}
}
