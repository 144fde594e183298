/*
 * server.go, part of mlabs.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

// Package server exposes the prediction engine over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"

	chem "github.com/rmera/mlabs"
	"github.com/rmera/mlabs/model"
	"github.com/rmera/mlabs/predict"
)

// Recorder keeps a log of served predictions.
type Recorder interface {
	RecordPrediction(ctx context.Context, source string, res predict.Results) (string, error)
}

// Options configures a server. Engine is required.
type Options struct {
	Engine   predict.Engine
	Models   []string //ids of the loaded property models
	Recorder Recorder //may be nil
	ServeUI  bool
	Timeout  time.Duration //0 means no deadline
	LogLevel string
	Logger   *zap.Logger
}

// Response is the body of every /predict answer.
type Response struct {
	Prediction predict.Results           `json:"prediction"`
	Legend     map[string]predict.Legend `json:"legend"`
	Error      string                    `json:"error"`
}

const maxBody = 8 << 20

type handler struct {
	Options
}

func setLevel(e *echo.Echo, loglevel string) {
	switch strings.ToLower(loglevel) {
	case "debug":
		e.Logger.SetLevel(log.DEBUG)
	case "info":
		e.Logger.SetLevel(log.INFO)
	case "warn", "":
		e.Logger.SetLevel(log.WARN)
	case "error":
		e.Logger.SetLevel(log.ERROR)
	case "off":
		e.Logger.SetLevel(log.OFF)
	default:
		e.Logger.SetLevel(log.WARN)
		e.Logger.Warnf("unknown loglevel: %s . fall-backed to warn", loglevel)
	}
}

// New builds the echo instance with all the routes.
func New(opts Options) (*echo.Echo, error) {
	if opts.Engine == nil {
		return nil, errors.New("server: no prediction engine")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	h := &handler{Options: opts}

	e := echo.New()
	e.HideBanner = true
	setLevel(e, opts.LogLevel)

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		e.DefaultHTTPErrorHandler(err, c)
		e.Logger.Error(err)
	}
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("8M"))

	// server-side latency
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			meth := c.Request().Method
			path := c.Request().URL
			begin := time.Now()
			c.Logger().Infof("< request %s %s", meth, path)
			err := next(c)
			c.Logger().Infof("> response status = %d (for %s %s) in %v / error = %+v",
				c.Response().Status, meth, path, time.Since(begin), err)
			return err
		}
	})

	e.POST("/predict", h.predict)
	e.GET("/legend", h.legend)
	e.GET("/models", h.models)
	if opts.ServeUI {
		e.GET("/", h.index)
	}
	return e, nil
}

// readStructure parses the request body as JSON when the content type says
// so, and as extended XYZ otherwise.
func readStructure(c echo.Context) (*chem.Structure, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBody))
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errors.New("empty request body")
	}
	ct := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(ct, echo.MIMEApplicationJSON) {
		return chem.JSONRead(bytes.NewReader(body))
	}
	return chem.XYZRead(bytes.NewReader(body))
}

type outcome struct {
	res predict.Results
	err error
}

func (h *handler) run(ctx context.Context, S *chem.Structure) (predict.Results, error) {
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := h.Engine.Predict(S)
		done <- outcome{res, err}
	}()
	select {
	case o := <-done:
		return o.res, o.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (h *handler) predict(c echo.Context) error {
	S, err := readStructure(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Response{Error: fmt.Sprintf("cannot read structure: %v", err)})
	}
	ctx := c.Request().Context()
	res, err := h.run(ctx, S)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
		}
		h.Logger.Warn("prediction failed", zap.Error(err))
		return c.JSON(status, Response{Error: err.Error()})
	}
	if h.Recorder != nil {
		id, err := h.Recorder.RecordPrediction(ctx, c.RealIP(), res)
		if err != nil {
			h.Logger.Error("cannot record prediction", zap.Error(err))
		} else {
			c.Response().Header().Set("X-Prediction-Id", id)
		}
	}
	return c.JSON(http.StatusOK, Response{
		Prediction: res,
		Legend:     predict.BuildLegend(res.IDs()),
	})
}

func (h *handler) legend(c echo.Context) error {
	ids := c.QueryParams()["id"]
	if len(ids) == 0 {
		ids = h.Models
		if len(ids) == 0 {
			ids = model.KnownIDs()
		}
	}
	return c.JSON(http.StatusOK, predict.BuildLegend(ids))
}

func (h *handler) models(c echo.Context) error {
	ids := h.Models
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(http.StatusOK, map[string]any{"models": ids, "synthetic": len(h.Models) == 0})
}

func (h *handler) index(c echo.Context) error {
	return c.HTML(http.StatusOK, indexPage)
}

const indexPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>mlabs</title></head>
<body>
<h1>Property prediction</h1>
<p>Paste a structure in extended XYZ format.</p>
<textarea id="xyz" rows="16" cols="80"></textarea><br>
<button onclick="send()">Predict</button>
<pre id="out"></pre>
<script>
function send() {
  fetch("/predict", {method: "POST", headers: {"Content-Type": "text/plain"},
    body: document.getElementById("xyz").value})
    .then(r => r.json())
    .then(j => {
      if (j.error) { document.getElementById("out").textContent = j.error; return; }
      let lines = [];
      for (const id in j.prediction) {
        const l = j.legend[id], p = j.prediction[id];
        lines.push(l.name + ": " + p.value + " ± " + p.mae + " " + l.units);
      }
      document.getElementById("out").textContent = lines.join("\n");
    });
}
</script>
</body>
</html>
`
