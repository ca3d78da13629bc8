package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"

	"github.com/GDVFox/gomatch/match_node/api/documents"
	"github.com/GDVFox/gomatch/match_node/api/matches"
	"github.com/GDVFox/gomatch/match_node/api/patterns"
	"github.com/GDVFox/gomatch/match_node/api/ping"
	"github.com/GDVFox/gomatch/match_node/api/scans"
	"github.com/GDVFox/gomatch/match_node/config"
	"github.com/GDVFox/gomatch/match_node/engine"
	"github.com/GDVFox/gomatch/match_node/external"
	"github.com/GDVFox/gomatch/match_node/registry"
	"github.com/GDVFox/gomatch/util"
	"github.com/GDVFox/gomatch/util/httplib"
)

var configFile string

func init() {
	flag.StringVar(&configFile, "config", "", "Name of config file")
}

func main() {
	flag.Parse()
	if err := util.LoadConfig(configFile, config.Conf); err != nil {
		fmt.Printf("can not read config file: %v", err)
		return
	}

	logger, err := util.NewLogger(config.Conf.Logging)
	if err != nil {
		fmt.Printf("can not init logger: %v", err)
		return
	}

	if err := external.InitExternal(config.Conf); err != nil {
		logger.Fatalf("can not init external resources: %v", err)
		return
	}

	initialPatterns, err := external.ETCD.LoadAllPatterns(context.Background())
	if err != nil {
		logger.Fatalf("can not load patterns: %v", err)
		return
	}
	registry.InitRegistry(initialPatterns, logger)

	if err := engine.StartEngine(logger, config.Conf.Engine, config.Conf.Journal); err != nil {
		logger.Fatalf("can not start match engine: %v", err)
		return
	}
	defer engine.Engine.Close()

	r := mux.NewRouter().PathPrefix("/v1").Subrouter()

	r.HandleFunc("/ping", httplib.CreateHandler(ping.Ping, logger)).Methods(http.MethodGet)

	r.HandleFunc("/patterns", httplib.CreateHandler(patterns.ListPatterns, logger)).Methods(http.MethodGet)
	r.HandleFunc("/patterns/{pattern_name:[a-zA-z0-9\\-]+}", httplib.CreateHandler(patterns.GetPattern, logger)).Methods(http.MethodGet)
	r.HandleFunc("/patterns", httplib.CreateHandler(patterns.CreatePattern, logger)).Methods(http.MethodPost)
	r.HandleFunc("/patterns/{pattern_name:[a-zA-z0-9\\-]+}", httplib.CreateHandler(patterns.UpdatePattern, logger)).Methods(http.MethodPut)
	r.HandleFunc("/patterns/{pattern_name:[a-zA-z0-9\\-]+}", httplib.CreateHandler(patterns.DeletePattern, logger)).Methods(http.MethodDelete)
	r.HandleFunc("/patterns/{pattern_name:[a-zA-z0-9\\-]+}/diagram", httplib.CreateHandler(patterns.GetPatternDiagram, logger)).Methods(http.MethodGet)

	r.HandleFunc("/documents", httplib.CreateHandler(documents.ListDocuments, logger)).Methods(http.MethodGet)
	r.HandleFunc("/documents/{document_name:[a-zA-z0-9\\-]+}", httplib.CreateHandler(documents.GetDocument, logger)).Methods(http.MethodGet)
	r.HandleFunc("/documents", httplib.CreateHandler(documents.CreateDocument, logger)).Methods(http.MethodPost)
	r.HandleFunc("/documents/{document_name:[a-zA-z0-9\\-]+}", httplib.CreateHandler(documents.UpdateDocument, logger)).Methods(http.MethodPut)
	r.HandleFunc("/documents/{document_name:[a-zA-z0-9\\-]+}", httplib.CreateHandler(documents.DeleteDocument, logger)).Methods(http.MethodDelete)

	r.HandleFunc("/scans", httplib.CreateHandler(scans.RunScan, logger)).Methods(http.MethodPost)
	r.HandleFunc("/scans/watch", httplib.CreateWSHandler(scans.WatchScan, logger)).Methods(http.MethodGet)

	r.HandleFunc("/matches", httplib.CreateHandler(matches.ListMatches, logger)).Methods(http.MethodGet)
	r.HandleFunc("/matches", httplib.CreateHandler(matches.AckMatches, logger)).Methods(http.MethodDelete)

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signalChannel)
	stopChannel := make(chan struct{})
	go func() {
		defer close(stopChannel)
		sig := <-signalChannel
		logger.Info("got signal: ", sig)
	}()

	httplib.StartServer(r, config.Conf.HTTP, logger, stopChannel)
}
