package bridge

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StateScript wraps a serialized state snapshot in the page-side update call.
// The call is skipped when the page does not define window.updateAppState.
func StateScript(stateJSON string) string {
	return "if (window.updateAppState) { window.updateAppState(" + stateJSON + "); }"
}

func jsString(s string) string {
	data, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(data)
}

// resolveFunction is the page-side function a reply is delivered to.
func resolveFunction(cfg RouterConfig) string {
	return "__" + cfg.QueryFunction + "Resolve"
}

// ShimScript defines the query functions in the page. post is a JavaScript
// expression evaluating to a function that forwards a message object to
// native code.
func ShimScript(cfg RouterConfig, post string) string {
	cfg = cfg.withDefaults()
	r := strings.NewReplacer(
		"{{query}}", cfg.QueryFunction,
		"{{cancel}}", cfg.CancelFunction,
		"{{resolve}}", resolveFunction(cfg),
		"{{post}}", post,
		"{{queryName}}", jsString(cfg.QueryFunction),
		"{{cancelName}}", jsString(cfg.CancelFunction),
	)
	return r.Replace(shimTemplate)
}

const shimTemplate = `(function () {
  if (window.{{query}}) { return; }
  var nextId = 1;
  var pending = {};
  var post = function (msg) { ({{post}})(msg); };
  window.{{query}} = function (q) {
    q = q || {};
    var id = nextId++;
    pending[id] = q;
    post({ name: {{queryName}}, id: id, request: String(q.request === undefined ? "" : q.request), persistent: !!q.persistent });
    return id;
  };
  window.{{cancel}} = function (id) {
    if (!pending[id]) { return; }
    delete pending[id];
    post({ name: {{cancelName}}, id: id });
  };
  window.{{resolve}} = function (id, ok, response, code, message) {
    var q = pending[id];
    if (!q) { return; }
    if (!q.persistent || !ok) { delete pending[id]; }
    if (ok) {
      if (q.onSuccess) { q.onSuccess(response); }
    } else if (q.onFailure) {
      q.onFailure(code, message);
    }
  };
})();`

// ResolveScript delivers a router reply to the page.
func ResolveScript(cfg RouterConfig, id int64, success bool, response string, code int, message string) string {
	cfg = cfg.withDefaults()
	return fmt.Sprintf("if (window.%s) { window.%s(%d, %t, %s, %d, %s); }",
		resolveFunction(cfg), resolveFunction(cfg), id, success, jsString(response), code, jsString(message))
}
