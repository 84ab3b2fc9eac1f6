// Package transport exposes the explorer over HTTP.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/explorer"
)

//go:generate mockgen -source=explorer_handler.go -destination=explorer_handler_mock_test.go -package=transport

// ExplorerService is the read surface served by the HTTP handlers.
type ExplorerService interface {
	GetBalance(ctx context.Context, hash string) (explorer.AddressBalanceView, error)
	GetClaimed(ctx context.Context, hash string) (explorer.AddressClaimedView, error)
	GetAddress(ctx context.Context, hash string) (explorer.AddressView, error)
	GetAsset(ctx context.Context, hash string) (explorer.AssetView, error)
	GetAssets(ctx context.Context) ([]explorer.AssetView, error)
	GetBlock(ctx context.Context, key string) (explorer.BlockView, error)
	GetLastBlocks(ctx context.Context) ([]explorer.BlockView, error)
	GetHighestBlock(ctx context.Context) (explorer.BlockView, error)
	GetTransaction(ctx context.Context, txid string) (explorer.TransactionView, error)
	GetLastTransactions(ctx context.Context, txType string) ([]explorer.TransactionView, error)
	GetAllNodes() []explorer.NodeView
	GetNodes() explorer.NodesView
	GetHeight() (explorer.HeightView, error)
}

const apiPrefix = "/api/main_net/v1"

// ExplorerHandler serves the explorer read API.
type ExplorerHandler struct {
	service ExplorerService
	logger  *zap.Logger
}

// NewExplorerHandler builds the handler around the given service.
func NewExplorerHandler(service ExplorerService, logger *zap.Logger) *ExplorerHandler {
	return &ExplorerHandler{
		service: service,
		logger:  logger,
	}
}

// Register mounts all explorer routes on the router.
func (h *ExplorerHandler) Register(router *mux.Router) {
	api := router.PathPrefix(apiPrefix).Subrouter()
	api.HandleFunc("/get_balance/{hash}", h.getBalance).Methods(http.MethodGet)
	api.HandleFunc("/get_claimed/{hash}", h.getClaimed).Methods(http.MethodGet)
	api.HandleFunc("/get_address/{hash}", h.getAddress).Methods(http.MethodGet)
	api.HandleFunc("/get_assets", h.getAssets).Methods(http.MethodGet)
	api.HandleFunc("/get_asset/{hash}", h.getAsset).Methods(http.MethodGet)
	api.HandleFunc("/get_block/{hash}", h.getBlock).Methods(http.MethodGet)
	api.HandleFunc("/get_last_blocks", h.getLastBlocks).Methods(http.MethodGet)
	api.HandleFunc("/get_highest_block", h.getHighestBlock).Methods(http.MethodGet)
	api.HandleFunc("/get_transaction/{hash}", h.getTransaction).Methods(http.MethodGet)
	api.HandleFunc("/get_last_transactions", h.getLastTransactions).Methods(http.MethodGet)
	api.HandleFunc("/get_last_transactions/{type}", h.getLastTransactions).Methods(http.MethodGet)
	api.HandleFunc("/get_all_nodes", h.getAllNodes).Methods(http.MethodGet)
	api.HandleFunc("/get_nodes", h.getNodes).Methods(http.MethodGet)
	api.HandleFunc("/get_height", h.getHeight).Methods(http.MethodGet)

	router.HandleFunc("/health", h.health).Methods(http.MethodGet)
}

func (h *ExplorerHandler) getBalance(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetBalance(r.Context(), mux.Vars(r)["hash"])
	h.respond(w, r, view, err)
}

func (h *ExplorerHandler) getClaimed(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetClaimed(r.Context(), mux.Vars(r)["hash"])
	h.respond(w, r, view, err)
}

func (h *ExplorerHandler) getAddress(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetAddress(r.Context(), mux.Vars(r)["hash"])
	h.respond(w, r, view, err)
}

func (h *ExplorerHandler) getAssets(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.GetAssets(r.Context())
	h.respond(w, r, views, err)
}

func (h *ExplorerHandler) getAsset(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetAsset(r.Context(), mux.Vars(r)["hash"])
	h.respond(w, r, view, err)
}

func (h *ExplorerHandler) getBlock(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetBlock(r.Context(), mux.Vars(r)["hash"])
	h.respond(w, r, view, err)
}

func (h *ExplorerHandler) getLastBlocks(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.GetLastBlocks(r.Context())
	h.respond(w, r, views, err)
}

func (h *ExplorerHandler) getHighestBlock(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetHighestBlock(r.Context())
	h.respond(w, r, view, err)
}

func (h *ExplorerHandler) getTransaction(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetTransaction(r.Context(), mux.Vars(r)["hash"])
	h.respond(w, r, view, err)
}

func (h *ExplorerHandler) getLastTransactions(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.GetLastTransactions(r.Context(), mux.Vars(r)["type"])
	h.respond(w, r, views, err)
}

func (h *ExplorerHandler) getAllNodes(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service.GetAllNodes(), nil)
}

func (h *ExplorerHandler) getNodes(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service.GetNodes(), nil)
}

func (h *ExplorerHandler) getHeight(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetHeight()
	h.respond(w, r, view, err)
}

func (h *ExplorerHandler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ExplorerHandler) respond(w http.ResponseWriter, r *http.Request, body any, err error) {
	switch {
	case errors.Is(err, explorer.ErrHeightUnavailable):
		h.writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	case err != nil:
		h.logger.Error("explorer request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err))
		h.writeJSON(w, r, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	default:
		h.writeJSON(w, r, http.StatusOK, body)
	}
}

func (h *ExplorerHandler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("write response failed",
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
}
