package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// HeaderResponseTime reports the handler time in milliseconds.
const HeaderResponseTime = "X-Response-Time"

// timingWriter stamps the elapsed time just before the headers are sent.
type timingWriter struct {
	gin.ResponseWriter
	start   time.Time
	stamped bool
}

func (w *timingWriter) stamp() {
	if w.stamped || w.ResponseWriter.Written() {
		return
	}
	w.stamped = true
	ms := float64(time.Since(w.start).Microseconds()) / 1000.0
	w.Header().Set(HeaderResponseTime, fmt.Sprintf("%.3fms", ms))
}

func (w *timingWriter) WriteHeader(code int) {
	w.stamp()
	w.ResponseWriter.WriteHeader(code)
}

func (w *timingWriter) WriteHeaderNow() {
	w.stamp()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *timingWriter) Write(b []byte) (int, error) {
	w.stamp()
	return w.ResponseWriter.Write(b)
}

func (w *timingWriter) WriteString(s string) (int, error) {
	w.stamp()
	return w.ResponseWriter.WriteString(s)
}

// ResponseTime adds X-Response-Time to every response.
func ResponseTime() gin.HandlerFunc {
	return func(c *gin.Context) {
		tw := &timingWriter{ResponseWriter: c.Writer, start: time.Now()}
		c.Writer = tw
		c.Next()
		// bodiless responses are flushed by gin after this returns
		tw.stamp()
	}
}
