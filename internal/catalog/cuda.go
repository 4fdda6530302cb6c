package catalog

import (
	"github.com/roach88/ifgen/internal/builder"
	"github.com/roach88/ifgen/internal/ctype"
)

// CUDAInterface is the struct name of the built-in CUDA driver interface.
const CUDAInterface = "cuda_interface"

// DeclareCUDA declares the CUDA driver API subset used by the runtime:
// contexts, devices, device memory, modules, streams and the 2D/3D copy
// descriptors.
func DeclareCUDA(b *builder.Builder) {
	context := b.DefineOpaquePtr("context_t", "CUcontext")
	device := b.DefineTaggedTypeWithSentinel("device_t", ctype.Int32, "CUdevice", "-2")
	devicePtr := b.DefineTaggedType("deviceptr_t", ctype.UInt64, "CUdeviceptr")
	function := b.DefineOpaquePtr("function_t", "CUfunction")
	module := b.DefineOpaquePtr("module_t", "CUmodule")
	stream := b.DefineOpaquePtr("stream_t", "CUstream")
	result := b.DefineEnum("result_t", "CUresult")
	memcpy2D := b.DefineTaggedType("memcpy2d_t", ctype.NewRecord(128, 8), "CUDA_MEMCPY2D")
	memcpy3D := b.DefineTaggedType("memcpy3d_t", ctype.NewRecord(200, 8), "CUDA_MEMCPY3D")
	memoryType := b.DefineEnum("memorytype_t", "CUmemorytype")
	dataType := b.DefineEnum("datatype_t", "cudaDataType")
	devAttr := b.DefineEnum("dev_attr_t", "CUdevice_attribute")

	b.DefineConstant("k_CUDA_SUCCESS", result, "0")
	b.DefineConstant("k_MEMORYTYPE_HOST", memoryType, "1")
	b.DefineConstant("k_MEMORYTYPE_DEVICE", memoryType, "2")
	b.DefineConstant("k_R_32F", dataType, "0")
	b.DefineConstant("k_C_32F", dataType, "4")
	b.DefineConstant("k_R_64F", dataType, "1")
	b.DefineConstant("k_C_64F", dataType, "5")
	b.DefineConstant("k_DEVICE_ATTRIBUTE_MULTIPROCESSOR_COUNT", devAttr, "16")

	b.DefineFields(memcpy2D,
		builder.Field{Name: "srcXInBytes", Type: ctype.UInt64, Offset: 0},
		builder.Field{Name: "srcY", Type: ctype.UInt64, Offset: 8},
		builder.Field{Name: "srcMemoryType", Type: memoryType, Offset: 16},
		builder.Field{Name: "srcHost", Type: ctype.VoidConstPtr(), Offset: 24},
		builder.Field{Name: "srcDevice", Type: devicePtr, Offset: 32},
		builder.Field{Name: "srcPitch", Type: ctype.UInt64, Offset: 48},
		builder.Field{Name: "dstXInBytes", Type: ctype.UInt64, Offset: 56},
		builder.Field{Name: "dstY", Type: ctype.UInt64, Offset: 64},
		builder.Field{Name: "dstMemoryType", Type: memoryType, Offset: 72},
		builder.Field{Name: "dstHost", Type: ctype.VoidPtr(), Offset: 80},
		builder.Field{Name: "dstDevice", Type: devicePtr, Offset: 88},
		builder.Field{Name: "dstPitch", Type: ctype.UInt64, Offset: 104},
		builder.Field{Name: "WidthInBytes", Type: ctype.UInt64, Offset: 112},
		builder.Field{Name: "Height", Type: ctype.UInt64, Offset: 120},
	)

	b.DefineFields(memcpy3D,
		builder.Field{Name: "srcXInBytes", Type: ctype.UInt64, Offset: 0},
		builder.Field{Name: "srcY", Type: ctype.UInt64, Offset: 8},
		builder.Field{Name: "srcZ", Type: ctype.UInt64, Offset: 16},
		builder.Field{Name: "srcLOD", Type: ctype.UInt64, Offset: 24},
		builder.Field{Name: "srcMemoryType", Type: memoryType, Offset: 32},
		builder.Field{Name: "srcHost", Type: ctype.VoidConstPtr(), Offset: 40},
		builder.Field{Name: "srcDevice", Type: devicePtr, Offset: 48},
		builder.Field{Name: "srcPitch", Type: ctype.UInt64, Offset: 72},
		builder.Field{Name: "srcHeight", Type: ctype.UInt64, Offset: 80},
		builder.Field{Name: "dstXInBytes", Type: ctype.UInt64, Offset: 88},
		builder.Field{Name: "dstY", Type: ctype.UInt64, Offset: 96},
		builder.Field{Name: "dstZ", Type: ctype.UInt64, Offset: 104},
		builder.Field{Name: "dstLOD", Type: ctype.UInt64, Offset: 112},
		builder.Field{Name: "dstMemoryType", Type: memoryType, Offset: 120},
		builder.Field{Name: "dstHost", Type: ctype.VoidPtr(), Offset: 128},
		builder.Field{Name: "dstDevice", Type: devicePtr, Offset: 136},
		builder.Field{Name: "dstPitch", Type: ctype.UInt64, Offset: 160},
		builder.Field{Name: "dstHeight", Type: ctype.UInt64, Offset: 168},
		builder.Field{Name: "WidthInBytes", Type: ctype.UInt64, Offset: 176},
		builder.Field{Name: "Height", Type: ctype.UInt64, Offset: 184},
		builder.Field{Name: "Depth", Type: ctype.UInt64, Offset: 192},
	)

	b.DefineFunction("cu_ctx_pop_current", result, ctype.PointerTo(context))
	b.DefineFunction("cu_ctx_set_current", result, context)
	b.DefineFunction("cu_device_get", result, ctype.PointerTo(device), ctype.Int32)
	b.DefineFunction("cu_device_primary_ctx_release", result, device)
	b.DefineFunction("cu_device_primary_ctx_retain", result, ctype.PointerTo(context), device)
	b.DefineFunction("cu_device_primary_ctx_set_flags", result, device, ctype.UInt32)
	b.DefineFunction("cu_get_error_string", result, result, ctype.PointerTo(ctype.CString()))
	b.DefineFunction("cu_init", result, ctype.UInt32)
	b.DefineFunction("cu_launch_kernel", result,
		function,
		ctype.UInt32, ctype.UInt32, ctype.UInt32, // grid
		ctype.UInt32, ctype.UInt32, ctype.UInt32, // block
		ctype.UInt32, // shared memory bytes
		stream,
		ctype.VoidPtrPtr(), ctype.VoidPtrPtr())
	b.DefineFunction("cu_mem_alloc", result, ctype.PointerTo(devicePtr), ctype.USize)
	b.DefineFunction("cu_memcpy2d_async", result, ctype.ConstPointerTo(memcpy2D), stream)
	b.DefineFunction("cu_memcpy3d_async", result, ctype.ConstPointerTo(memcpy3D), stream)
	b.DefineFunction("cu_memcpy_dtod_async", result, devicePtr, devicePtr, ctype.USize, stream)
	b.DefineFunction("cu_memcpy_dtoh_async", result, ctype.VoidPtr(), devicePtr, ctype.USize, stream)
	b.DefineFunction("cu_memcpy_htod_async", result, devicePtr, ctype.VoidConstPtr(), ctype.USize, stream)
	b.DefineFunction("cu_memset_d8_async", result, devicePtr, ctype.UInt8, ctype.USize, stream)
	b.DefineFunction("cu_mem_free", result, devicePtr)
	b.DefineFunction("cu_module_get_function", result, ctype.PointerTo(function), module, ctype.CString())
	b.DefineFunction("cu_module_load_fat_binary", result, ctype.PointerTo(module), ctype.VoidConstPtr())
	b.DefineFunction("cu_module_unload", result, module)
	b.DefineFunction("cu_stream_create", result, ctype.PointerTo(stream), ctype.UInt32)
	b.DefineFunction("cu_stream_destroy", result, stream)
	b.DefineFunction("cu_stream_synchronize", result, stream)
	b.DefineFunction("cu_mem_alloc_host", result, ctype.VoidPtrPtr(), ctype.UInt64)
	b.DefineFunction("cu_mem_free_host", result, ctype.VoidPtr())
	b.DefineFunction("cuDeviceGetAttribute", result, ctype.PointerTo(ctype.Int32), devAttr, device)
	b.DefineFunction("cu_mem_host_register", result, ctype.VoidPtr(), ctype.USize, ctype.UInt32)
	b.DefineFunction("cu_mem_host_unregister", result, ctype.VoidPtr())
}
