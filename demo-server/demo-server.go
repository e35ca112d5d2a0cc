package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	goredis "github.com/go-redis/redis"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/namsral/flag"
	opentracing "github.com/opentracing/opentracing-go"
	zipkin "github.com/openzipkin/zipkin-go-opentracing"

	"github.com/retro-framework/go-unify/framework/accessor"
	redisaccessor "github.com/retro-framework/go-unify/framework/accessor/redis"
	"github.com/retro-framework/go-unify/framework/engine"
	"github.com/retro-framework/go-unify/framework/parse"
	"github.com/retro-framework/go-unify/framework/unify"
)

func main() {

	var (
		listenAddr   string
		zipkinAddr   string
		influxDBAddr string
		redisAddr    string
	)

	flag.StringVar(&listenAddr, "listen_addr", ":8080", "address to serve the match API on")
	flag.StringVar(&zipkinAddr, "zipkin_addr", "http://localhost:9411/api/v1/spans", "zipkin collector endpoint")
	flag.StringVar(&influxDBAddr, "influxdb_addr", "", "influxdb endpoint for match stats (empty disables)")
	flag.StringVar(&redisAddr, "redis_addr", "", "match against redis hashes at this address instead of the posted object (object becomes a key)")
	flag.Parse()

	collector, err := zipkin.NewHTTPCollector(zipkinAddr)
	if err != nil {
		log.Fatal(err)
		return
	}
	defer collector.Close()

	tracer, err := zipkin.NewTracer(
		zipkin.NewRecorder(collector, true, listenAddr, "go-unify-demo-server"),
	)
	if err != nil {
		log.Fatal(err)
	}
	opentracing.SetGlobalTracer(tracer)

	var stats chan matchStat
	if influxDBAddr != "" {
		stats = make(chan matchStat, 64)
		go publishStatsToInfluxDB(influxDBAddr, stats)
	}

	var acc unify.Accessor = accessor.Reflect{}
	if redisAddr != "" {
		acc = redisaccessor.NewAccessor(goredis.NewClient(&goredis.Options{Addr: redisAddr}))
	}

	var (
		srv = matchServer{
			unifier: engine.New(acc),
			stats:   stats,
		}
		r = mux.NewRouter()
	)
	r.HandleFunc("/match", srv.match).Methods("POST")

	log.Println("Listening on:", listenAddr)
	log.Fatal(http.ListenAndServe(listenAddr, handlers.LoggingHandler(os.Stdout, r)))
}

type matchServer struct {
	unifier engine.Unifier
	stats   chan matchStat
}

type matchRequest struct {
	// Pattern is a YAML pattern document, see the parse package.
	Pattern string `json:"pattern"`
	// Object is the root of the object graph to match against.
	Object interface{} `json:"object"`
}

type matchResponse struct {
	Matches  int                      `json:"matches"`
	Bindings []map[string]interface{} `json:"bindings"`
}

func (srv matchServer) match(w http.ResponseWriter, req *http.Request) {

	var (
		ctx   = req.Context()
		start = time.Now()
		mReq  matchRequest
	)

	if err := json.NewDecoder(req.Body).Decode(&mReq); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pat, vars, err := parse.Pattern([]byte(mReq.Pattern))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var res = matchResponse{Bindings: []map[string]interface{}{}}
	err = srv.unifier.Unify(ctx, pat, mReq.Object, func(context.Context) error {
		res.Matches++
		res.Bindings = append(res.Bindings, snapshot(vars))
		return nil
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if srv.stats != nil {
		select {
		case srv.stats <- matchStat{Pattern: mReq.Pattern, Matches: res.Matches, Took: time.Since(start)}:
		default: // never block a request on the stats sink
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Println("err writing response", err)
	}
}

// snapshot copies the currently bound variables into a plain map, the
// bindings themselves are undone the moment the match callback
// returns.
func snapshot(vars map[string]*unify.Variable) map[string]interface{} {
	bound := map[string]interface{}{}
	for name, v := range vars {
		if !v.Bound() {
			continue
		}
		value, err := v.Value()
		if err != nil {
			continue
		}
		bound[name] = value
	}
	return bound
}
