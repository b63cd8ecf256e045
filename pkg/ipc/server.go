package ipc

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/odvcencio/browserd/pkg/logging"
	"github.com/odvcencio/browserd/pkg/session"
)

// BrowserGRPCServer provides a ready-to-serve gRPC listener.
type BrowserGRPCServer struct {
	service *service
	server  *grpc.Server
}

// NewGRPCServer wires a session registry into a servable gRPC server.
func NewGRPCServer(registry *session.Registry, logger *logging.Logger) *BrowserGRPCServer {
	server := grpc.NewServer(
		grpc.ForceServerCodec(jsonCodec{}),
		grpc.UnaryInterceptor(metricsUnaryInterceptor),
	)
	svc := NewService(registry, logger)
	RegisterBrowserServiceServer(server, svc)
	return &BrowserGRPCServer{service: svc, server: server}
}

// Serve blocks serving RPCs on the listener.
func (s *BrowserGRPCServer) Serve(lis net.Listener) error {
	return s.server.Serve(lis)
}

// GracefulStop drains in-flight calls and stops the server.
func (s *BrowserGRPCServer) GracefulStop() {
	s.server.GracefulStop()
}

// --- Manual service descriptor plumbing (no proto build) ---

// RegisterBrowserServiceServer registers service handlers.
func RegisterBrowserServiceServer(s *grpc.Server, srv BrowserServiceServer) {
	s.RegisterService(&_BrowserService_serviceDesc, srv)
}

const browserServiceName = "browserd.v1.BrowserService"

func _BrowserService_OpenBrowser_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(OpenBrowserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrowserServiceServer).OpenBrowser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + browserServiceName + "/OpenBrowser",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BrowserServiceServer).OpenBrowser(ctx, req.(*OpenBrowserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrowserService_CloseBrowser_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrowserServiceServer).CloseBrowser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + browserServiceName + "/CloseBrowser",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BrowserServiceServer).CloseBrowser(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrowserService_GoTo_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(URLRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrowserServiceServer).GoTo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + browserServiceName + "/GoTo",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BrowserServiceServer).GoTo(ctx, req.(*URLRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrowserService_GetTitle_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrowserServiceServer).GetTitle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + browserServiceName + "/GetTitle",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BrowserServiceServer).GetTitle(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrowserService_GetUrl_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrowserServiceServer).GetUrl(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + browserServiceName + "/GetUrl",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BrowserServiceServer).GetUrl(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrowserService_GetTextContent_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SelectorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrowserServiceServer).GetTextContent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + browserServiceName + "/GetTextContent",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BrowserServiceServer).GetTextContent(ctx, req.(*SelectorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrowserService_GetDomProperty_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PropertyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrowserServiceServer).GetDomProperty(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + browserServiceName + "/GetDomProperty",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BrowserServiceServer).GetDomProperty(ctx, req.(*PropertyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrowserService_GetBoolProperty_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PropertyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrowserServiceServer).GetBoolProperty(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + browserServiceName + "/GetBoolProperty",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BrowserServiceServer).GetBoolProperty(ctx, req.(*PropertyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrowserService_GetSelectContent_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SelectorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrowserServiceServer).GetSelectContent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + browserServiceName + "/GetSelectContent",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BrowserServiceServer).GetSelectContent(ctx, req.(*SelectorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrowserService_InputText_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(InputTextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrowserServiceServer).InputText(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + browserServiceName + "/InputText",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BrowserServiceServer).InputText(ctx, req.(*InputTextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrowserService_ClickButton_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SelectorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrowserServiceServer).ClickButton(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + browserServiceName + "/ClickButton",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BrowserServiceServer).ClickButton(ctx, req.(*SelectorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrowserService_CheckCheckbox_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SelectorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrowserServiceServer).CheckCheckbox(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + browserServiceName + "/CheckCheckbox",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BrowserServiceServer).CheckCheckbox(ctx, req.(*SelectorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrowserService_UncheckCheckbox_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SelectorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrowserServiceServer).UncheckCheckbox(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + browserServiceName + "/UncheckCheckbox",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BrowserServiceServer).UncheckCheckbox(ctx, req.(*SelectorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrowserService_SelectOption_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SelectOptionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrowserServiceServer).SelectOption(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + browserServiceName + "/SelectOption",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BrowserServiceServer).SelectOption(ctx, req.(*SelectOptionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrowserService_Health_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrowserServiceServer).Health(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + browserServiceName + "/Health",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BrowserServiceServer).Health(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrowserService_Screenshot_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ScreenshotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrowserServiceServer).Screenshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + browserServiceName + "/Screenshot",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BrowserServiceServer).Screenshot(ctx, req.(*ScreenshotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _BrowserService_serviceDesc = grpc.ServiceDesc{
	ServiceName: browserServiceName,
	HandlerType: (*BrowserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "OpenBrowser", Handler: _BrowserService_OpenBrowser_Handler},
		{MethodName: "CloseBrowser", Handler: _BrowserService_CloseBrowser_Handler},
		{MethodName: "GoTo", Handler: _BrowserService_GoTo_Handler},
		{MethodName: "GetTitle", Handler: _BrowserService_GetTitle_Handler},
		{MethodName: "GetUrl", Handler: _BrowserService_GetUrl_Handler},
		{MethodName: "GetTextContent", Handler: _BrowserService_GetTextContent_Handler},
		{MethodName: "GetDomProperty", Handler: _BrowserService_GetDomProperty_Handler},
		{MethodName: "GetBoolProperty", Handler: _BrowserService_GetBoolProperty_Handler},
		{MethodName: "GetSelectContent", Handler: _BrowserService_GetSelectContent_Handler},
		{MethodName: "InputText", Handler: _BrowserService_InputText_Handler},
		{MethodName: "ClickButton", Handler: _BrowserService_ClickButton_Handler},
		{MethodName: "CheckCheckbox", Handler: _BrowserService_CheckCheckbox_Handler},
		{MethodName: "UncheckCheckbox", Handler: _BrowserService_UncheckCheckbox_Handler},
		{MethodName: "SelectOption", Handler: _BrowserService_SelectOption_Handler},
		{MethodName: "Health", Handler: _BrowserService_Health_Handler},
		{MethodName: "Screenshot", Handler: _BrowserService_Screenshot_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "browserd_ipc",
}
