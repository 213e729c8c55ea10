package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/monokrome/pkhex-go/internal/catalog"
	"github.com/monokrome/pkhex-go/internal/dispatch"
	"github.com/monokrome/pkhex-go/internal/engine/memengine"
	"github.com/monokrome/pkhex-go/internal/persistence/auditdb"
	"github.com/monokrome/pkhex-go/internal/persistence/auditlog"
	"github.com/monokrome/pkhex-go/internal/transport/ws"
)

func main() {
	var (
		addr       = flag.String("addr", ":8080", "http listen address")
		savesDir   = flag.String("saves", "./data/saves", "directory save paths resolve under")
		catalogDir = flag.String("catalogs", "", "catalog directory (empty: embedded defaults)")
		tuningPath = flag.String("tuning", "", "path to tuning.yaml (empty: built-in defaults)")
		auditDB    = flag.String("audit_db", "./data/audit.db", "sqlite audit index path (empty to disable)")
		auditDir   = flag.String("audit_log", "", "audit JSONL directory (empty to disable)")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lmicroseconds)

	cats, err := loadCatalogs(*catalogDir)
	if err != nil {
		logger.Fatalf("load catalogs: %v", err)
	}
	tun := memengine.DefaultTuning()
	if *tuningPath != "" {
		tun, err = memengine.LoadTuning(*tuningPath)
		if err != nil {
			logger.Fatalf("load tuning: %v", err)
		}
	}
	if err := os.MkdirAll(*savesDir, 0o755); err != nil {
		logger.Fatalf("create saves dir: %v", err)
	}

	eng := memengine.New(cats, tun, memengine.WithSavesDir(*savesDir))

	audit, cleanup, err := buildAuditor(*auditDB, *auditDir, logger)
	if err != nil {
		logger.Fatalf("open audit sinks: %v", err)
	}
	defer cleanup()

	srv := ws.NewServer(eng, logger, audit)

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/ws", srv.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	httpSrv := &http.Server{Addr: *addr, Handler: mux}
	go func() {
		logger.Printf("listening on %s (game=%s, pouches=%d)", *addr, tun.Game, len(tun.Pouches))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	logger.Printf("shutting down (open sessions: %d)", eng.OpenSessions())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(ctx)
}

func loadCatalogs(dir string) (*catalog.Catalogs, error) {
	if dir == "" {
		return catalog.Default()
	}
	return catalog.Load(dir)
}

// multiAuditor fans one call record out to every configured sink.
type multiAuditor struct {
	db  *auditdb.DB
	jl  *auditlog.Writer
	log *log.Logger
}

func (m *multiAuditor) RecordCall(rec dispatch.CallRecord) {
	if m.db != nil {
		m.db.Record(auditdb.Call{
			Op:            rec.Op,
			Handle:        rec.Handle,
			OK:            rec.OK,
			Error:         rec.Error,
			ProtocolFault: rec.ProtocolFault,
		})
	}
	if m.jl != nil {
		err := m.jl.Write(auditlog.Entry{
			Op:            rec.Op,
			Handle:        rec.Handle,
			OK:            rec.OK,
			Error:         rec.Error,
			ProtocolFault: rec.ProtocolFault,
		})
		if err != nil && m.log != nil {
			m.log.Printf("audit log write: %v", err)
		}
	}
}

func buildAuditor(dbPath, logDir string, logger *log.Logger) (dispatch.Auditor, func(), error) {
	m := &multiAuditor{log: logger}
	cleanup := func() {
		if m.db != nil {
			_ = m.db.Close()
		}
		if m.jl != nil {
			_ = m.jl.Close()
		}
	}
	if dbPath != "" {
		db, err := auditdb.Open(dbPath)
		if err != nil {
			return nil, func() {}, err
		}
		m.db = db
	}
	if logDir != "" {
		m.jl = auditlog.NewWriter(logDir, "calls")
	}
	if m.db == nil && m.jl == nil {
		return nil, cleanup, nil
	}
	return m, cleanup, nil
}
