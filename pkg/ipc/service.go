package ipc

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/odvcencio/browserd/pkg/engine"
	"github.com/odvcencio/browserd/pkg/logging"
	"github.com/odvcencio/browserd/pkg/session"
)

// screenshotExtension is appended to every screenshot output path.
const screenshotExtension = ".png"

// BrowserServiceServer describes the RPC surface for automation clients.
type BrowserServiceServer interface {
	OpenBrowser(context.Context, *OpenBrowserRequest) (*Ack, error)
	CloseBrowser(context.Context, *emptypb.Empty) (*Ack, error)
	GoTo(context.Context, *URLRequest) (*Ack, error)
	GetTitle(context.Context, *emptypb.Empty) (*StringResponse, error)
	GetUrl(context.Context, *emptypb.Empty) (*StringResponse, error)
	GetTextContent(context.Context, *SelectorRequest) (*StringResponse, error)
	GetDomProperty(context.Context, *PropertyRequest) (*StringResponse, error)
	GetBoolProperty(context.Context, *PropertyRequest) (*BoolResponse, error)
	GetSelectContent(context.Context, *SelectorRequest) (*SelectContentResponse, error)
	InputText(context.Context, *InputTextRequest) (*Ack, error)
	ClickButton(context.Context, *SelectorRequest) (*Ack, error)
	CheckCheckbox(context.Context, *SelectorRequest) (*Ack, error)
	UncheckCheckbox(context.Context, *SelectorRequest) (*Ack, error)
	SelectOption(context.Context, *SelectOptionRequest) (*Ack, error)
	Health(context.Context, *emptypb.Empty) (*StringResponse, error)
	Screenshot(context.Context, *ScreenshotRequest) (*Ack, error)
}

type service struct {
	registry *session.Registry
	logger   *logging.Logger
}

// NewService wires the session registry to the RPC surface. The registry
// is passed by reference so session ownership stays auditable in one place.
func NewService(registry *session.Registry, logger *logging.Logger) *service {
	return &service{registry: registry, logger: logger}
}

func (s *service) OpenBrowser(ctx context.Context, req *OpenBrowserRequest) (*Ack, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "open browser request required")
	}
	kind, err := engine.ParseKind(req.Browser)
	if err != nil {
		return nil, toStatus(err)
	}
	sess, replaced, err := s.registry.Open(ctx, kind, req.URL)
	if err != nil {
		// A created session survives a failed initial navigation.
		if sess != nil {
			s.logger.Warn(logging.CategoryPage, "initial_navigation_failed",
				fmt.Sprintf("navigation to %s failed: %v", req.URL, err),
				map[string]any{"session_id": sess.ID()})
		}
		return nil, toStatus(err)
	}

	log := fmt.Sprintf("Opened %s browser", kind)
	if req.URL != "" {
		log += " to " + req.URL
	}
	if replaced {
		log += ", closed previous session"
	}
	return &Ack{Log: log}, nil
}

func (s *service) CloseBrowser(ctx context.Context, _ *emptypb.Empty) (*Ack, error) {
	if err := s.registry.Close(ctx); err != nil {
		return nil, toStatus(err)
	}
	return &Ack{Log: "Closed browser"}, nil
}

func (s *service) GoTo(ctx context.Context, req *URLRequest) (*Ack, error) {
	sess, err := s.registry.Require("go to url")
	if err != nil {
		return nil, toStatus(err)
	}
	if err := sess.Page().Goto(ctx, req.URL); err != nil {
		return nil, toStatus(err)
	}
	s.logger.Debug(logging.CategoryPage, "navigated", req.URL, nil)
	return &Ack{Log: "Navigated to " + req.URL}, nil
}

func (s *service) GetTitle(ctx context.Context, _ *emptypb.Empty) (*StringResponse, error) {
	sess, err := s.registry.Require("get title")
	if err != nil {
		return nil, toStatus(err)
	}
	title, err := sess.Page().Title(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &StringResponse{Body: title}, nil
}

func (s *service) GetUrl(ctx context.Context, _ *emptypb.Empty) (*StringResponse, error) {
	sess, err := s.registry.Require("get url")
	if err != nil {
		return nil, toStatus(err)
	}
	url, err := sess.Page().URL(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &StringResponse{Body: url}, nil
}

func (s *service) GetTextContent(ctx context.Context, req *SelectorRequest) (*StringResponse, error) {
	sess, err := s.registry.Require("get text content")
	if err != nil {
		return nil, toStatus(err)
	}
	text, err := sess.Page().TextContent(ctx, req.Selector)
	if err != nil {
		return nil, toStatus(err)
	}
	return &StringResponse{Body: text}, nil
}

func (s *service) GetDomProperty(ctx context.Context, req *PropertyRequest) (*StringResponse, error) {
	sess, err := s.registry.Require("get dom property")
	if err != nil {
		return nil, toStatus(err)
	}
	value, err := sess.Page().Property(ctx, req.Selector, req.Property)
	if err != nil {
		return nil, propertyStatus(err, req.Selector)
	}
	return &StringResponse{Body: stringify(value)}, nil
}

func (s *service) GetBoolProperty(ctx context.Context, req *PropertyRequest) (*BoolResponse, error) {
	sess, err := s.registry.Require("get bool property")
	if err != nil {
		return nil, toStatus(err)
	}
	value, err := sess.Page().Property(ctx, req.Selector, req.Property)
	if err != nil {
		return nil, propertyStatus(err, req.Selector)
	}
	return &BoolResponse{Body: truthy(value)}, nil
}

func (s *service) GetSelectContent(ctx context.Context, req *SelectorRequest) (*SelectContentResponse, error) {
	sess, err := s.registry.Require("get select content")
	if err != nil {
		return nil, toStatus(err)
	}
	entries, err := sess.Page().SelectContent(ctx, req.Selector)
	if err != nil {
		return nil, toStatus(err)
	}
	return &SelectContentResponse{Entries: entries}, nil
}

func (s *service) InputText(ctx context.Context, req *InputTextRequest) (*Ack, error) {
	sess, err := s.registry.Require("input text")
	if err != nil {
		return nil, toStatus(err)
	}
	if err := sess.Page().Fill(ctx, req.Selector, req.Text); err != nil {
		return nil, toStatus(err)
	}
	return &Ack{Log: "Input text: " + req.Text}, nil
}

func (s *service) ClickButton(ctx context.Context, req *SelectorRequest) (*Ack, error) {
	sess, err := s.registry.Require("click button")
	if err != nil {
		return nil, toStatus(err)
	}
	if err := sess.Page().Click(ctx, req.Selector); err != nil {
		return nil, toStatus(err)
	}
	return &Ack{Log: "Clicked button " + req.Selector}, nil
}

func (s *service) CheckCheckbox(ctx context.Context, req *SelectorRequest) (*Ack, error) {
	sess, err := s.registry.Require("check checkbox")
	if err != nil {
		return nil, toStatus(err)
	}
	if err := sess.Page().SetChecked(ctx, req.Selector, true); err != nil {
		return nil, toStatus(err)
	}
	return &Ack{Log: "Checked checkbox " + req.Selector}, nil
}

func (s *service) UncheckCheckbox(ctx context.Context, req *SelectorRequest) (*Ack, error) {
	sess, err := s.registry.Require("uncheck checkbox")
	if err != nil {
		return nil, toStatus(err)
	}
	if err := sess.Page().SetChecked(ctx, req.Selector, false); err != nil {
		return nil, toStatus(err)
	}
	return &Ack{Log: "Unchecked checkbox " + req.Selector}, nil
}

func (s *service) SelectOption(ctx context.Context, req *SelectOptionRequest) (*Ack, error) {
	sess, err := s.registry.Require("select option")
	if err != nil {
		return nil, toStatus(err)
	}
	// The engine call always runs; an empty match set is only known after
	// the engine has reported which options it selected.
	selected, err := sess.Page().SelectOptions(ctx, req.Selector, req.Matchers)
	if err != nil {
		return nil, toStatus(err)
	}
	if len(selected) == 0 {
		return nil, status.Errorf(codes.NotFound, "No options matching %s found in element %s",
			strings.Join(req.Matchers, ", "), req.Selector)
	}
	return &Ack{Log: fmt.Sprintf("Selected options [%s] in element %s",
		strings.Join(selected, ", "), req.Selector)}, nil
}

func (s *service) Health(ctx context.Context, _ *emptypb.Empty) (*StringResponse, error) {
	return &StringResponse{Body: "OK"}, nil
}

func (s *service) Screenshot(ctx context.Context, req *ScreenshotRequest) (*Ack, error) {
	sess, err := s.registry.Require("take screenshot")
	if err != nil {
		return nil, toStatus(err)
	}
	path := req.Path + screenshotExtension
	if err := sess.Page().Screenshot(ctx, path); err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info(logging.CategoryPage, "screenshot", path, map[string]any{"session_id": sess.ID()})
	return &Ack{Log: "Screenshot saved to " + path}, nil
}

// stringify renders a resolved DOM property value for the wire.
func stringify(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// truthy folds a resolved DOM property value to a bool, defaulting falsy
// values to false.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return true
	}
}
